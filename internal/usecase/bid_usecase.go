package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBidNotFound  = errors.New("bid not found")
	ErrInvalidBidID = errors.New("invalid bid id")
	ErrInvalidEmail = errors.New("invalid email")
)

// IBidUseCase exposes the bid lifecycle.
//
// Operations map to the marketplace flow:
//   - visitor finalizes an estimate   => Submit()
//   - follow-up page                  => GetByID()
//   - PATCH /bids/{id}/(accept|decline|cancel) => status updates

type IBidUseCase interface {
	Submit(ctx context.Context, email string, selections []SelectionInput, bound DurationBound) (entities.Bid, error)
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	AcceptByID(ctx context.Context, id string) (entities.Bid, error)
	DeclineByID(ctx context.Context, id string) (entities.Bid, error)
	CancelByID(ctx context.Context, id string) (entities.Bid, error)
}

type BidUseCase struct {
	repo      interfaces.IBidRepository
	estimator IEstimateUseCase
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(repo interfaces.IBidRepository, estimator IEstimateUseCase) *BidUseCase {
	return &BidUseCase{repo: repo, estimator: estimator}
}

// Submit recomputes the estimate server-side and freezes it into a
// pending bid. The client's selections stay valid on failure; nothing
// is persisted unless the whole computation succeeds.
func (u *BidUseCase) Submit(ctx context.Context, email string, selections []SelectionInput, bound DurationBound) (entities.Bid, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Bid{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Bid{}, ErrInvalidEmail
	}

	result, err := u.estimator.Preview(ctx, selections, bound)
	if err != nil {
		return entities.Bid{}, err
	}

	now := time.Now().UTC()
	b := entities.Bid{
		ID:              uuid.NewString(),
		Email:           email,
		TotalEstimate:   result.Totals.TotalPrice,
		TimeEstimateMin: result.Totals.Time.Min,
		TimeEstimateMax: result.Totals.Time.Max,
		StartDate:       result.Schedule.StartDate,
		EndDate:         result.Schedule.EndDate,
		SelectedOptions: result.Selections,
		Status:          entities.BidStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, b)
}

func (u *BidUseCase) AcceptByID(ctx context.Context, id string) (entities.Bid, error) {
	return u.updateStatusByID(ctx, id, entities.BidStatusAccepted)
}

func (u *BidUseCase) DeclineByID(ctx context.Context, id string) (entities.Bid, error) {
	return u.updateStatusByID(ctx, id, entities.BidStatusDeclined)
}

func (u *BidUseCase) CancelByID(ctx context.Context, id string) (entities.Bid, error) {
	return u.updateStatusByID(ctx, id, entities.BidStatusCancelled)
}

func (u *BidUseCase) updateStatusByID(ctx context.Context, id string, status entities.BidStatus) (entities.Bid, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bid{}, ErrInvalidBidID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Bid{}, err
	}
	if updated.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return updated, nil
}

func (u *BidUseCase) GetByID(ctx context.Context, id string) (entities.Bid, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bid{}, ErrInvalidBidID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Bid{}, err
	}
	if b.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return b, nil
}
