package repository

import (
	"context"

	"flightdesk-service/internal/domain/entity"
)

// LeadMirror appends a persisted lead to an external, non-authoritative
// copy. Implementations are best-effort; callers never read back.
type LeadMirror interface {
	Append(ctx context.Context, lead *entity.Lead) error
}
