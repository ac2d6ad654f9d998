package usecase_test

import (
	"context"
	"time"

	"flightdesk-service/pkg/duffel"
	"flightdesk-service/pkg/logger"
	"flightdesk-service/pkg/metrics"
)

// One registration per test binary; promauto uses the global registry.
var testMetrics = metrics.NewMetrics("usecase_test")

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})       {}
func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Error(string, ...interface{})       {}
func (nopLogger) Fatal(string, ...interface{})       {}
func (n nopLogger) With(...interface{}) logger.Logger { return n }

type fakeSearcher struct {
	fn func(ctx context.Context, req *duffel.OfferRequest, supplierTimeout time.Duration) ([]duffel.Offer, error)
}

func (f *fakeSearcher) Search(ctx context.Context, req *duffel.OfferRequest, supplierTimeout time.Duration) ([]duffel.Offer, error) {
	return f.fn(ctx, req, supplierTimeout)
}
