package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vzahanych/weather-map/internal/sampler"
	"github.com/vzahanych/weather-map/internal/server/utils"
	"go.uber.org/zap"
)

type AnnotationsHandler struct {
	sampler         *sampler.Service
	defaultMaxCount int
	logger          *zap.Logger
}

func NewAnnotationsHandler(svc *sampler.Service, defaultMaxCount int, logger *zap.Logger) *AnnotationsHandler {
	return &AnnotationsHandler{
		sampler:         svc,
		defaultMaxCount: defaultMaxCount,
		logger:          logger,
	}
}

func (h *AnnotationsHandler) GetAnnotations(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)
	reqLogger := h.logger.With(zap.String("request_id", utils.GetRequestIDFromGinContext(c)))

	var req AnnotationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: err.Error(),
		})
		return
	}

	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		reqLogger.Warn("Request validation failed", zap.Any("errors", verrs))
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: utils.FormatValidationDetails(verrs),
		})
		return
	}

	maxCount := h.defaultMaxCount
	if req.Max != nil {
		maxCount = *req.Max
	}

	annotations, err := h.sampler.GetForecastAnnotations(ctx, req.Region(), maxCount)
	if err != nil {
		if errors.Is(err, sampler.ErrInvalidArgument) {
			reqLogger.Warn("Invalid sample request", zap.Error(err))
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{
				Error:   "Invalid sample request",
				Code:    "INVALID_ARGUMENT",
				Details: err.Error(),
			})
			return
		}

		reqLogger.Error("Failed to sample forecasts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Error:   "Failed to sample forecasts",
			Code:    "SAMPLE_ERROR",
			Details: err.Error(),
		})
		return
	}

	reqLogger.Info("Annotations request completed",
		zap.Int("max_count", maxCount),
		zap.Int("returned", len(annotations)))

	c.JSON(http.StatusOK, AnnotationsResponse{
		Count:       len(annotations),
		Annotations: annotations,
	})
}

func (h *AnnotationsHandler) GetForecasts(c *gin.Context) {
	ctx := utils.GetContextFromGinContext(c)

	records, err := h.sampler.AllForecasts(ctx)
	if err != nil {
		h.logger.Error("Failed to list forecasts",
			zap.String("request_id", utils.GetRequestIDFromGinContext(c)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Error:   "Failed to list forecasts",
			Code:    "STORE_ERROR",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ForecastsResponse{
		Count:     len(records),
		Forecasts: records,
	})
}
