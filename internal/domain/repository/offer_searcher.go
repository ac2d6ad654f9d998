package repository

import (
	"context"
	"time"

	"flightdesk-service/pkg/duffel"
)

// OfferSearcher defines the interface for third-party offer searches.
// supplierTimeout bounds how long the upstream waits on airlines.
type OfferSearcher interface {
	Search(ctx context.Context, req *duffel.OfferRequest, supplierTimeout time.Duration) ([]duffel.Offer, error)
}
