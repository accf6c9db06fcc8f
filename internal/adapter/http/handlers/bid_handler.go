package handlers

import (
	"context"
	"errors"
	"net/http"

	request "estimator_service/internal/adapter/http/dto/request"
	response "estimator_service/internal/adapter/http/dto/response"
	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase"
	"estimator_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)
)

// BidHandler handles HTTP requests for the bid lifecycle.

type BidHandler struct {
	usecase usecase.IBidUseCase
}

func NewBidHandler(uc usecase.IBidUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

// SubmitBid finalizes an estimate: the selections are recomputed
// server-side, frozen into a bid and persisted. On failure the caller
// keeps its selections and may simply re-submit.
func (h *BidHandler) SubmitBid(c *gin.Context) {
	var payload request.BidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	est := payload.EstimatePart()
	bid, err := h.usecase.Submit(
		c.Request.Context(),
		payload.ResolveEmail(),
		toSelectionInputs(est.ResolveSelections()),
		usecase.DurationBound(est.ResolveBound()),
	)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBid(bid))
}

// GetBid serves the follow-up page lookup by opaque bid id.
func (h *BidHandler) GetBid(c *gin.Context) {
	bid, err := h.usecase.GetByID(c.Request.Context(), c.Param("bid_id"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(bid))
}

func (h *BidHandler) AcceptBid(c *gin.Context) {
	h.patchBidStatus(c, h.usecase.AcceptByID)
}

func (h *BidHandler) DeclineBid(c *gin.Context) {
	h.patchBidStatus(c, h.usecase.DeclineByID)
}

func (h *BidHandler) CancelBid(c *gin.Context) {
	h.patchBidStatus(c, h.usecase.CancelByID)
}

func (h *BidHandler) patchBidStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Bid, error),
) {
	bid, err := updater(c.Request.Context(), c.Param("bid_id"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(bid))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "A valid email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBidID), errors.Is(err, usecase.ErrNoSelections),
		errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidBound):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownOption):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Selected option not found in catalog", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
