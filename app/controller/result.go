package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-billpay/app/factory"
	"github.com/vibast-solutions/ms-go-billpay/app/mapper"
	"github.com/vibast-solutions/ms-go-billpay/app/service"
	"github.com/vibast-solutions/ms-go-billpay/app/types"
)

type ResultController struct {
	resultService *service.ResultService
	logger        logrus.FieldLogger
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
		logger:        factory.NewModuleLogger("results-controller"),
	}
}

func (c *ResultController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

// RecordResult is the gateway-facing write path. Any parseable payload
// with a reference is accepted; duplicates overwrite silently.
func (c *ResultController) RecordResult(ctx echo.Context) error {
	req, err := types.NewRecordResultRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.resultService.Record(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrReferenceRequired) {
			return c.writeError(ctx, http.StatusBadRequest, "referenceText is required")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Record payment result failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	factory.LoggerWithContext(c.logger, ctx).WithFields(logrus.Fields{
		"reference": result.ReferenceText,
		"resp_code": result.RespCode,
	}).Info("Payment result recorded")

	return ctx.JSON(http.StatusOK, &types.StatusResponse{Status: "success"})
}

// FetchResult is the poll read path. Reads never delete the entry, so a
// page reload or a racing second tick sees the same result.
func (c *ResultController) FetchResult(ctx echo.Context) error {
	req := types.NewFetchResultRequestFromContext(ctx)
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.resultService.Fetch(ctx.Request().Context(), req.ReferenceText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResultNotFound):
			return c.writeError(ctx, http.StatusNotFound, "Payment result not found")
		case errors.Is(err, service.ErrReferenceRequired):
			return c.writeError(ctx, http.StatusBadRequest, "Transaction ID is required")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Fetch payment result failed")
			return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, mapper.ResultToResponse(result))
}

func (c *ResultController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
