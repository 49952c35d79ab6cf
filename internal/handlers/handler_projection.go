package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/money_forecast_app/internal/dto"
	"github.com/SscSPs/money_forecast_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectionHandler handles HTTP requests for balance forecasts.
type projectionHandler struct {
	projectionService portssvc.ProjectionSvc
	scheduleService   portssvc.ScheduleSvc
}

// newProjectionHandler creates a new projectionHandler.
func newProjectionHandler(ps portssvc.ProjectionSvc, ss portssvc.ScheduleSvc) *projectionHandler {
	return &projectionHandler{
		projectionService: ps,
		scheduleService:   ss,
	}
}

// RegisterProjectionRoutes registers the forecast routes of an account.
func RegisterProjectionRoutes(rg *gin.RouterGroup, projectionService portssvc.ProjectionSvc, scheduleService portssvc.ScheduleSvc) {
	h := newProjectionHandler(projectionService, scheduleService)

	accounts := rg.Group("/accounts/:accountID")
	{
		accounts.GET("/projection", h.getProjection)
		accounts.POST("/schedule", h.scheduleDue)
	}
}

// getProjection godoc
// @Summary Project an account's balance
// @Description Returns realized and projected transactions of an account between two dates, each with the balance after it posts. Wishlist items are placed once they stay affordable.
// @Tags projection
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   fromDate query string true "First day of the window (YYYY-MM-DD)"
// @Param   toDate query string true "Last day of the window (YYYY-MM-DD)"
// @Success 200 {object} dto.ProjectionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid dates or invalid recurring record"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (another user's account)"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate projection"
// @Security BearerAuth
// @Router /accounts/{accountID}/projection [get]
func (h *projectionHandler) getProjection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var query dto.ProjectionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind projection query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "fromDate and toDate are required in YYYY-MM-DD format"})
		return
	}

	logger = logger.With(slog.String("account_id", accountID))
	logger.Info("Received request for projection",
		slog.Time("from_date", query.FromDate),
		slog.Time("to_date", query.ToDate))

	result, err := h.projectionService.GetProjection(c.Request.Context(), accountID, query.FromDate, query.ToDate, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate projection")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectionResponse(result))
}

// scheduleDue godoc
// @Summary Queue due occurrences for materialization
// @Description Publishes one job per recurring occurrence that has fallen due within the lookback window. Jobs are written to the ledger asynchronously.
// @Tags projection
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 202 {object} dto.ScheduleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid recurring record"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden (another user's account)"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to schedule occurrences"
// @Security BearerAuth
// @Router /accounts/{accountID}/schedule [post]
func (h *projectionHandler) scheduleDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("account_id", accountID))

	scheduled, err := h.scheduleService.ScheduleDue(c.Request.Context(), accountID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to schedule occurrences")
		return
	}

	logger.Info("Occurrences scheduled", slog.Int("scheduled", scheduled))
	c.JSON(http.StatusAccepted, dto.ScheduleResponse{AccountID: accountID, Scheduled: scheduled})
}
