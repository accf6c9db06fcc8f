package interfaces

import (
	"context"
	"estimator_service/internal/domain/entities"
)

// IBidRepository abstracts DynamoDB persistence for Bid.
//
// The estimator service must be able to:
//   - create a bid when a visitor finalizes an estimate
//   - load a bid for the follow-up page
//   - update bid status (accept/decline/cancel)

type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BidStatus) (entities.Bid, error)
}
