package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/domain/repository"
	"flightdesk-service/pkg/apierr"
	"flightdesk-service/pkg/logger"
	"flightdesk-service/pkg/metrics"
)

const (
	confirmationPrefix = "TKB-"

	// reservedLatestID is the path value owned by the latest-lead
	// endpoint; the by-id lookup must reject it before querying.
	reservedLatestID = "latest"
)

// MirrorEnqueuer hands a persisted lead to the background mirror. The
// call must never block or fail the caller.
type MirrorEnqueuer interface {
	Enqueue(lead *entity.Lead)
}

// LeadService owns lead creation and lookups. The document store is
// the sole source of truth; the mirror is a derived copy.
type LeadService struct {
	repo    repository.LeadRepository
	mirror  MirrorEnqueuer
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewLeadService creates a new lead service
func NewLeadService(repo repository.LeadRepository, mirror MirrorEnqueuer, logger logger.Logger, metrics *metrics.Metrics) *LeadService {
	return &LeadService{
		repo:    repo,
		mirror:  mirror,
		logger:  logger,
		metrics: metrics,
	}
}

// GenerateConfirmationID produces a customer-facing token: the fixed
// prefix plus a random six-digit number. Generated locally, stable
// once assigned.
func GenerateConfirmationID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		n = big.NewInt(time.Now().UnixNano() % 900000)
	}
	return fmt.Sprintf("%s%d", confirmationPrefix, n.Int64()+100000)
}

// Create persists a booking intent and schedules the spreadsheet
// mirror append off the response path.
func (s *LeadService) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	if lead == nil || lead.Flight == nil || lead.Travellers == nil || lead.Contact == nil || lead.Payment == nil {
		return nil, apierr.BadRequest("Missing required booking details")
	}

	now := time.Now().UTC()
	lead.ID = primitive.NewObjectID().Hex()
	lead.ConfirmationID = GenerateConfirmationID()
	lead.BookedAt = now
	lead.Source = entity.LeadSourceWebsite
	lead.Status = entity.LeadStatusConfirmed
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if err := s.repo.Insert(ctx, lead); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("lead_create").Inc()
		return nil, apierr.Internal("Error saving lead", err)
	}

	s.metrics.LeadsCreated.Inc()
	s.logger.Info("Lead saved",
		"id", lead.ID,
		"confirmationId", lead.ConfirmationID)

	// Mirror append is fire-and-forget; the response below does not
	// depend on it.
	s.mirror.Enqueue(lead)

	return lead, nil
}

// GetByID looks a lead up by its internal identifier. The reserved
// "latest" value and malformed identifiers are rejected before any
// query runs.
func (s *LeadService) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	if id == "" || id == reservedLatestID {
		return nil, apierr.BadRequest("Invalid lead ID")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apierr.BadRequest("Invalid lead ID")
	}

	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierr.Internal("Error fetching lead", err)
	}
	if lead == nil {
		return nil, apierr.NotFound("Lead not found")
	}
	return lead, nil
}

// GetByConfirmationID looks a lead up by its customer-facing token.
func (s *LeadService) GetByConfirmationID(ctx context.Context, confirmationID string) (*entity.Lead, error) {
	lead, err := s.repo.FindByConfirmationID(ctx, confirmationID)
	if err != nil {
		return nil, apierr.Internal("Error fetching booking", err)
	}
	if lead == nil {
		return nil, apierr.NotFound("No booking found with this confirmation ID")
	}
	return lead, nil
}

// GetLatest returns the most recently created lead.
func (s *LeadService) GetLatest(ctx context.Context) (*entity.Lead, error) {
	lead, err := s.repo.FindLatest(ctx)
	if err != nil {
		return nil, apierr.Internal("Error fetching latest booking", err)
	}
	if lead == nil {
		return nil, apierr.NotFound("No recent booking found")
	}
	return lead, nil
}
