package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
	"github.com/somkassa/exchange_office_app/internal/middleware"
)

// currencyHandler handles HTTP requests related to currency balances.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currency balances.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.POST("", h.upsertCurrency)
		currencies.PUT("/:code/quantity", h.setCurrencyQuantity)
		currencies.DELETE("/:code", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves all held currencies, most recently updated first
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves a single currency balance by its code
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// upsertCurrency godoc
// @Summary Create or update a currency
// @Description Creates a currency or updates the supplied fields by code; omitted fields keep their prior value
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.UpsertCurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) upsertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind upsert currency request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	currency, err := h.currencyService.UpsertCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// setCurrencyQuantity godoc
// @Summary Set the held quantity of a currency
// @Description Overwrites the held amount with an absolute non-negative value
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency code"
// @Param quantity body dto.SetQuantityRequest true "New quantity"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{code}/quantity [put]
func (h *currencyHandler) setCurrencyQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind set quantity request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	currency, err := h.currencyService.SetCurrencyQuantity(c.Request.Context(), c.Param("code"), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency record; history rows keep the code by value. The base currency cannot be deleted
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{code} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	if err := h.currencyService.DeleteCurrency(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
