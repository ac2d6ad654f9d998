package repository

import (
	"context"
	"time"

	"flightdesk-service/internal/domain/repository"
	"flightdesk-service/pkg/duffel"
	"flightdesk-service/pkg/metrics"
)

// DuffelOfferRepository adapts the Duffel client to the OfferSearcher
// interface and records upstream call latency.
type DuffelOfferRepository struct {
	client  *duffel.Client
	metrics *metrics.Metrics
}

// NewDuffelOfferRepository creates a new Duffel-backed offer searcher
func NewDuffelOfferRepository(client *duffel.Client, metrics *metrics.Metrics) repository.OfferSearcher {
	return &DuffelOfferRepository{
		client:  client,
		metrics: metrics,
	}
}

// Search creates an offer request and returns the inline offers
func (r *DuffelOfferRepository) Search(ctx context.Context, req *duffel.OfferRequest, supplierTimeout time.Duration) ([]duffel.Offer, error) {
	start := time.Now()
	offers, err := r.client.CreateOfferRequest(ctx, req, supplierTimeout)
	r.metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	return offers, err
}
