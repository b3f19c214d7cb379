package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
)

// systemHandler handles maintenance and lookup endpoints.
type systemHandler struct {
	systemService  portssvc.SystemSvcFacade
	historyService portssvc.HistorySvcFacade
}

// newSystemHandler creates a new systemHandler.
func newSystemHandler(ss portssvc.SystemSvcFacade, hs portssvc.HistorySvcFacade) *systemHandler {
	return &systemHandler{systemService: ss, historyService: hs}
}

// registerSystemRoutes registers maintenance and lookup endpoints.
func registerSystemRoutes(rg *gin.RouterGroup, systemService portssvc.SystemSvcFacade, historyService portssvc.HistorySvcFacade) {
	h := newSystemHandler(systemService, historyService)

	system := rg.Group("/system")
	{
		system.POST("/reset", h.reset)
		system.GET("/currency-summary", h.currencySummary)
		system.GET("/history-codes", h.historyCodes)
		system.GET("/history-types", h.historyTypes)
	}
}

// reset godoc
// @Summary Reset the office to its initial state
// @Description Deletes all history and foreign currencies, zeroes the base balance, removes non-admin users and restores the default admin credential
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /system/reset [post]
func (h *systemHandler) reset(c *gin.Context) {
	if err := h.systemService.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

// currencySummary godoc
// @Summary Balance summary
// @Description Base currency balance plus a map of every other held balance
// @Tags system
// @Produce json
// @Success 200 {object} dto.CurrencySummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /system/currency-summary [get]
func (h *systemHandler) currencySummary(c *gin.Context) {
	summary, err := h.systemService.CurrencySummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// historyCodes godoc
// @Summary Distinct history currency codes
// @Description Currency codes that appear in the ledger, ascending
// @Tags system
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /system/history-codes [get]
func (h *systemHandler) historyCodes(c *gin.Context) {
	codes, err := h.historyService.ListEntryCodes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

// historyTypes godoc
// @Summary Distinct history operation types
// @Description Operation types that appear in the ledger, ascending
// @Tags system
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /system/history-types [get]
func (h *systemHandler) historyTypes(c *gin.Context) {
	types, err := h.historyService.ListEntryTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}
