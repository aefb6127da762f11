package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/config"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/item"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/testing/leaktest"
)

type stubPool struct{ err error }

func (p stubPool) Ping(ctx context.Context) error { return p.err }
func (p stubPool) Close()                         {}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{Port: 0, ServiceName: "magic-items", Version: "test"}
	svc := item.NewService(item.NewFakeRepository())
	return NewServer(cfg, stubPool{}, svc).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestItemLifecycle(t *testing.T) {
	h := newTestServer(t)

	// Create
	rec := do(t, h, http.MethodPost, "/items/create", `{"name":"Sword","value":100,"stock":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Sword", created.Name)
	assert.Equal(t, 1, created.Stock)

	// Listed
	rec = do(t, h, http.MethodGet, "/items/all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)

	// Increase stock by 3
	rec = do(t, h, http.MethodPost, fmt.Sprintf("/items/%d/increase_stock?quantity=3", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var adjusted domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adjusted))
	assert.Equal(t, 4, adjusted.Stock)

	// Delete
	rec = do(t, h, http.MethodDelete, fmt.Sprintf("/items/delete/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item deleted successfully")

	// Gone
	rec = do(t, h, http.MethodGet, fmt.Sprintf("/items/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStockRoundTrip(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/items/create", `{"name":"Potion","stock":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	do(t, h, http.MethodPost, fmt.Sprintf("/items/%d/increase_stock?quantity=5", created.ID), "")
	rec = do(t, h, http.MethodPost, fmt.Sprintf("/items/%d/decrease_stock?quantity=5", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var after domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Equal(t, created.Stock, after.Stock)
}

func TestEmptyUpdateLeavesRowUntouched(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/items/create", `{"name":"Lamp","value":9}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(t, h, http.MethodPut, fmt.Sprintf("/items/update_item/%d", created.ID), `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var after domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Equal(t, created, after)

	rec = do(t, h, http.MethodPut, "/items/update_item/999", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateMirrorsShape(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/items/create", `[{"name":"A"},{"name":"B"}]`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "["))

	rec = do(t, h, http.MethodGet, "/items/search?name=B", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var found []domain.MagicItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, "B", found[0].Name)

	rec = do(t, h, http.MethodGet, "/items/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.InventoryStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 2, stats.TotalStock)
}

func TestAmbientRoutes(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		contains   string
	}{
		{"/healthz", http.StatusOK, `"status":"ok"`},
		{"/readyz", http.StatusOK, `"status":"ok"`},
		{"/version", http.StatusOK, `"service":"magic-items"`},
		{"/items/", http.StatusOK, "Welcome to my Magic Items inventory!"},
		{"/metrics", http.StatusOK, "http_requests_total"},
		{"/nope", http.StatusNotFound, ErrMsgNotFound},
	}

	// Generate at least one request so the counter family is exported
	do(t, h, http.MethodGet, "/items/all", "")

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/items/", "")

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestReadyzReportsDatabaseFailure(t *testing.T) {
	cfg := &config.Config{ServiceName: "magic-items"}
	h := NewServer(cfg, stubPool{err: assert.AnError}, item.NewService(item.NewFakeRepository())).Handler()

	rec := do(t, h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStartStopReleasesGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	cfg := &config.Config{Port: 0, ServiceName: "magic-items"}
	srv := NewServer(cfg, stubPool{}, item.NewService(item.NewFakeRepository()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	require.NoError(t, <-errCh, "clean shutdown should not surface ErrServerClosed")

	checker.Check(1)
}
