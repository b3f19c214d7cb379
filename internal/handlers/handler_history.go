package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somkassa/exchange_office_app/internal/apperrors"
	portssvc "github.com/somkassa/exchange_office_app/internal/core/ports/services"
	"github.com/somkassa/exchange_office_app/internal/dto"
	"github.com/somkassa/exchange_office_app/internal/middleware"
)

// historyHandler handles HTTP requests over the exchange ledger.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

// newHistoryHandler creates a new historyHandler.
func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// registerHistoryRoutes registers routes related to the exchange ledger.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	history := rg.Group("/history")
	{
		history.GET("", h.listEntries)
		history.GET("/filter", h.listEntriesInRange)
		history.POST("", h.createEntry)
		history.PUT("/:id", h.updateEntry)
		history.DELETE("/:id", h.deleteEntry)
	}
}

func listParamsFromQuery(c *gin.Context) (dto.ListEntriesParams, error) {
	var params dto.ListEntriesParams
	if code := c.Query("currency_code"); code != "" {
		params.CurrencyCode = &code
	}
	if opType := c.Query("operation_type"); opType != "" {
		params.OperationType = &opType
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return params, fmt.Errorf("%w: limit must be a non-negative integer", apperrors.ErrValidation)
		}
		params.Limit = limit
	}
	return params, nil
}

func entryIDFromPath(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: entry id must be an integer", apperrors.ErrValidation)
	}
	return id, nil
}

// listEntries godoc
// @Summary List history entries
// @Description Retrieves ledger rows, newest first, optionally narrowed by currency code, operation type and a result limit
// @Tags history
// @Produce json
// @Param currency_code query string false "Currency code filter"
// @Param operation_type query string false "Operation type filter (Purchase or Sale)"
// @Param limit query int false "Maximum number of rows"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [get]
func (h *historyHandler) listEntries(c *gin.Context) {
	params, err := listParamsFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.historyService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// listEntriesInRange godoc
// @Summary List history entries within a date range
// @Description Retrieves ledger rows within the inclusive [from, to] window plus the optional filters
// @Tags history
// @Produce json
// @Param from query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param to query string true "Range end (RFC3339 or YYYY-MM-DD)"
// @Param currency_code query string false "Currency code filter"
// @Param operation_type query string false "Operation type filter (Purchase or Sale)"
// @Param limit query int false "Maximum number of rows"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/filter [get]
func (h *historyHandler) listEntriesInRange(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	params, err := listParamsFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.historyService.ListEntriesInRange(c.Request.Context(), from, to, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// createEntry godoc
// @Summary Insert a history entry
// @Description Administrative backfill of a ledger row; balances stay untouched
// @Tags history
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [post]
func (h *historyHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.historyService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Correct a history entry
// @Description Partial administrative correction; supplied values pass through without re-validation
// @Tags history
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/{id} [put]
func (h *historyHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, err := entryIDFromPath(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind update entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.historyService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a history entry
// @Description Administrative removal of a ledger row
// @Tags history
// @Produce json
// @Param id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history/{id} [delete]
func (h *historyHandler) deleteEntry(c *gin.Context) {
	entryID, err := entryIDFromPath(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.historyService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
