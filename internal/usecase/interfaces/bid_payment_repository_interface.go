package interfaces

import (
	"context"
	"estimator_service/internal/domain/entities"
)

// IBidPaymentRepository abstracts DynamoDB persistence for BidPayment.

type IBidPaymentRepository interface {
	Create(ctx context.Context, p entities.BidPayment) (entities.BidPayment, error)
	GetByID(ctx context.Context, id string) (entities.BidPayment, error)
	ListByBidID(ctx context.Context, bidID string) ([]entities.BidPayment, error)
}
