package repository

import (
	"context"

	"flightdesk-service/internal/domain/entity"
)

// LeadRepository defines the interface for lead persistence. Find
// methods return (nil, nil) when no matching document exists.
type LeadRepository interface {
	Insert(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindByConfirmationID(ctx context.Context, confirmationID string) (*entity.Lead, error)
	FindLatest(ctx context.Context) (*entity.Lead, error)
}
