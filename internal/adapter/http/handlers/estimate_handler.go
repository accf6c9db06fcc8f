package handlers

import (
	"errors"
	"net/http"

	request "estimator_service/internal/adapter/http/dto/request"
	response "estimator_service/internal/adapter/http/dto/response"
	"estimator_service/internal/usecase"
	"estimator_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles stateless estimate previews: the client's
// selections in, the aggregated totals and projected schedule out.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// PreviewEstimate recomputes totals and schedule for the submitted
// selections. Nothing is persisted.
func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Preview(
		c.Request.Context(),
		toSelectionInputs(payload.ResolveSelections()),
		usecase.DurationBound(payload.ResolveBound()),
	)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(result))
}

func toSelectionInputs(sels []request.SelectionRequest) []usecase.SelectionInput {
	out := make([]usecase.SelectionInput, 0, len(sels))
	for _, s := range sels {
		out = append(out, usecase.SelectionInput{Category: s.Category, OptionID: s.OptionID})
	}
	return out
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoSelections), errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidBound):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownOption):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Selected option not found in catalog", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
