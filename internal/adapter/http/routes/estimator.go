package routes

import (
	"estimator_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addEstimatorRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	estimateHandler *handlers.EstimateHandler,
	bidHandler *handlers.BidHandler,
	bidPaymentHandler *handlers.BidPaymentHandler,
) {
	rg.GET("/catalog", catalogHandler.ListCatalog)

	rg.POST("/estimates", estimateHandler.PreviewEstimate)

	bids := rg.Group("/bids")
	bids.POST("", bidHandler.SubmitBid)
	bids.GET("/:bid_id", bidHandler.GetBid)
	bids.PATCH("/:bid_id/accept", bidHandler.AcceptBid)
	bids.PATCH("/:bid_id/decline", bidHandler.DeclineBid)
	bids.PATCH("/:bid_id/cancel", bidHandler.CancelBid)

	payments := rg.Group("/payments")
	payments.POST("/:bid_id", bidPaymentHandler.CreatePaymentByBidID)
	payments.GET("/:bid_id", bidPaymentHandler.GetPaymentByBidID)
}
