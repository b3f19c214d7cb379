package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
)

// reportingHandler handles the read-only analytics endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the analytics endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/daily", h.dailyTurnover)
		analytics.GET("/distribution", h.distribution)
		analytics.GET("/profitability", h.profitability)
		analytics.GET("/dashboard", h.dashboard)
	}
}

// dailyTurnover godoc
// @Summary Daily turnover report
// @Description Purchases, sales and margin per UTC calendar day within [from, to]; inactive days omitted
// @Tags analytics
// @Produce json
// @Param from query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string true "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.DailyTurnover
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/daily [get]
func (h *reportingHandler) dailyTurnover(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.DailyTurnover(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// distribution godoc
// @Summary Turnover distribution report
// @Description Sums of totals per currency, split by operation type, base currency excluded. currency_code=ALL or absent means unfiltered
// @Tags analytics
// @Produce json
// @Param from query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string true "Range end (RFC3339 or YYYY-MM-DD)"
// @Param currency_code query string false "Restrict to one currency code"
// @Success 200 {object} domain.Distribution
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/distribution [get]
func (h *reportingHandler) distribution(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var currencyCode *string
	if code := c.Query("currency_code"); code != "" && code != "ALL" {
		currencyCode = &code
	}

	report, err := h.reportingService.Distribution(c.Request.Context(), from, to, currencyCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// profitability godoc
// @Summary Currency profitability report
// @Description Average purchase and sale rates and realized margin per foreign currency, best first
// @Tags analytics
// @Produce json
// @Param from query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string true "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} domain.CurrencyPerformance
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/profitability [get]
func (h *reportingHandler) profitability(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.Profitability(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// dashboard godoc
// @Summary Combined analytics dashboard
// @Description All three reports for one window; a failed sub-report degrades to its empty shape
// @Tags analytics
// @Produce json
// @Param from query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string true "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} domain.DashboardReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.Dashboard(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
