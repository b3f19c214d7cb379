package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
	"github.com/somkassa/exchange_office_app/internal/middleware"
)

// exchangeHandler handles the exchange endpoint.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

// newExchangeHandler creates a new exchangeHandler.
func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

// registerExchangeRoutes registers the exchange endpoint.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)
	rg.POST("/exchange", h.performExchange)
}

// performExchange godoc
// @Summary Execute a currency exchange
// @Description Validates and executes one Purchase or Sale atomically against both balances and the ledger
// @Tags exchange
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeRequest true "Exchange details"
// @Success 201 {object} dto.ExchangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange [post]
func (h *exchangeHandler) performExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind exchange request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.exchangeService.PerformExchange(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToExchangeResponse(result))
}
