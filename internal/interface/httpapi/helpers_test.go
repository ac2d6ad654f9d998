package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"flightdesk-service/internal/domain/entity"
	"flightdesk-service/internal/interface/httpapi"
	"flightdesk-service/internal/usecase"
	"flightdesk-service/pkg/duffel"
	"flightdesk-service/pkg/logger"
	"flightdesk-service/pkg/metrics"
)

// The metrics registry is global; construct it once per test binary.
var testMetrics = metrics.NewMetrics("httpapi_test")

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func (nopLogger) With(...interface{}) logger.Logger { return nopLogger{} }

type fakeSearcher struct {
	fn func(ctx context.Context, req *duffel.OfferRequest, supplierTimeout time.Duration) ([]duffel.Offer, error)
}

func (f *fakeSearcher) Search(ctx context.Context, req *duffel.OfferRequest, supplierTimeout time.Duration) ([]duffel.Offer, error) {
	return f.fn(ctx, req, supplierTimeout)
}

type memLeadRepo struct {
	leads []*entity.Lead
}

func (m *memLeadRepo) Insert(_ context.Context, lead *entity.Lead) error {
	m.leads = append(m.leads, lead)
	return nil
}

func (m *memLeadRepo) FindByID(_ context.Context, id string) (*entity.Lead, error) {
	for _, l := range m.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memLeadRepo) FindByConfirmationID(_ context.Context, confirmationID string) (*entity.Lead, error) {
	for _, l := range m.leads {
		if l.ConfirmationID == confirmationID {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memLeadRepo) FindLatest(_ context.Context) (*entity.Lead, error) {
	if len(m.leads) == 0 {
		return nil, nil
	}
	return m.leads[len(m.leads)-1], nil
}

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(*entity.Lead) {}

type testApp struct {
	router   *chi.Mux
	searcher *fakeSearcher
	leadRepo *memLeadRepo
}

type appOptions struct {
	rateLimit *httpapi.RateLimitConfig
	enqueuer  usecase.MirrorEnqueuer
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	searcher := &fakeSearcher{
		fn: func(context.Context, *duffel.OfferRequest, time.Duration) ([]duffel.Offer, error) {
			return nil, nil
		},
	}
	leadRepo := &memLeadRepo{}

	limit := httpapi.RateLimitConfig{Requests: 1000, Window: time.Minute}
	if opts.rateLimit != nil {
		limit = *opts.rateLimit
	}
	var enqueuer usecase.MirrorEnqueuer = nopEnqueuer{}
	if opts.enqueuer != nil {
		enqueuer = opts.enqueuer
	}

	log := nopLogger{}
	responder := httpapi.NewResponder(log, false)
	search := usecase.NewFlightSearch(searcher, 15*time.Second, log, testMetrics)
	trending := usecase.NewTrendingRoutes(searcher, 10*time.Second, log, testMetrics)
	leads := usecase.NewLeadService(leadRepo, enqueuer, log, testMetrics)

	router := httpapi.NewRouter(
		log,
		responder,
		httpapi.NewRateLimiter(limit),
		httpapi.NewFlightHandler(search, trending, responder),
		httpapi.NewLeadHandler(leads, responder),
		[]string{"http://localhost:3000"},
	)

	return &testApp{router: router, searcher: searcher, leadRepo: leadRepo}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
