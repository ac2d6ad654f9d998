package usecase

import (
	"context"
	"time"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/domain/repository"
	"flightdesk-service/pkg/logger"
	"flightdesk-service/pkg/metrics"
)

const mirrorAppendTimeout = 30 * time.Second

// MirrorQueue decouples spreadsheet appends from the request path: a
// buffered channel feeds one worker goroutine, and every failure in
// this path is logged and swallowed. At-most-once, no retries, no
// ordering guarantee between appends.
type MirrorQueue struct {
	mirror  repository.LeadMirror
	ch      chan *entity.Lead
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewMirrorQueue creates a mirror queue with the given buffer size.
func NewMirrorQueue(mirror repository.LeadMirror, size int, logger logger.Logger, metrics *metrics.Metrics) *MirrorQueue {
	if size <= 0 {
		size = 64
	}
	return &MirrorQueue{
		mirror:  mirror,
		ch:      make(chan *entity.Lead, size),
		logger:  logger,
		metrics: metrics,
	}
}

// Enqueue hands a lead to the worker without blocking. When the buffer
// is full the lead is dropped; the store already holds the truth.
func (q *MirrorQueue) Enqueue(lead *entity.Lead) {
	select {
	case q.ch <- lead:
	default:
		q.metrics.ErrorsCount.WithLabelValues("mirror_enqueue").Inc()
		q.logger.Warn("Mirror queue full, dropping lead",
			"confirmationId", lead.ConfirmationID)
	}
}

// Start runs the worker loop until the context is cancelled. Run it in
// its own goroutine.
func (q *MirrorQueue) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			q.logger.Info("Mirror queue stopped")
			return
		case lead := <-q.ch:
			q.appendOne(lead)
		}
	}
}

func (q *MirrorQueue) appendOne(lead *entity.Lead) {
	// Detached from any request context; only the per-append timeout
	// applies.
	ctx, cancel := context.WithTimeout(context.Background(), mirrorAppendTimeout)
	defer cancel()

	if err := q.mirror.Append(ctx, lead); err != nil {
		q.metrics.ErrorsCount.WithLabelValues("mirror_append").Inc()
		q.logger.Error("Failed to mirror lead to sheet",
			"confirmationId", lead.ConfirmationID,
			"error", err)
		return
	}

	q.metrics.SheetRowsSynced.Inc()
	q.logger.Info("Lead synced to sheet", "confirmationId", lead.ConfirmationID)
}
