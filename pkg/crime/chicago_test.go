package crime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenClock(t *testing.T) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })
}

// chicagoTestRecords builds 32 records: one violent, one property, three
// recent noise records and 27 stale noise records.
func chicagoTestRecords() []map[string]string {
	records := []map[string]string{
		{"primary_type": "ASSAULT", "date": "2024-06-14T08:00:00"},
		{"primary_type": "THEFT", "date": "2024-06-12T21:30:00"},
	}
	for i := 0; i < 3; i++ {
		records = append(records, map[string]string{"primary_type": "NARCOTICS", "date": "2024-06-10T10:00:00"})
	}
	for i := 0; i < 27; i++ {
		records = append(records, map[string]string{"primary_type": "NARCOTICS", "date": "2024-05-20T10:00:00"})
	}
	return records
}

func TestChicagoAdapter_Fetch(t *testing.T) {
	frozenClock(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 30-day lookback from the frozen 2024-06-15 clock.
		assert.Equal(t, "date >= '2024-05-16'", r.URL.Query().Get("$where"))
		assert.Equal(t, "1000", r.URL.Query().Get("$limit"))
		assert.Equal(t, "date DESC", r.URL.Query().Get("$order"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chicagoTestRecords())
	}))
	defer srv.Close()

	a := &chicagoAdapter{
		client:       newRewriteClient(srv.URL, chicagoCrimeURL),
		lookbackDays: 30,
		recentDays:   7,
	}

	result, err := a.fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	// 1/32 of records in each category: int(1/32 * 100 * 15) = 46.
	assert.Equal(t, 46, result.ViolentCrimeIndex)
	assert.Equal(t, 46, result.PropertyCrimeIndex)
	// Records on or after 2024-06-08: assault, theft, three noise records.
	assert.Equal(t, 5, result.RecentIncidentCount)
	assert.Equal(t, a.provenance(), result.Provenance)
}

func TestChicagoAdapter_RetriesWithoutDateFilter(t *testing.T) {
	frozenClock(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Simulate a schema error on the filtered query.
			require.NotEmpty(t, r.URL.Query().Get("$where"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Empty(t, r.URL.Query().Get("$where"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chicagoTestRecords())
	}))
	defer srv.Close()

	a := &chicagoAdapter{
		client:       newRewriteClient(srv.URL, chicagoCrimeURL),
		lookbackDays: 30,
		recentDays:   7,
	}

	result, err := a.fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int32(2), calls.Load())
}

func TestChicagoAdapter_NoRetryOnMalformedPayload(t *testing.T) {
	frozenClock(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	a := &chicagoAdapter{
		client:       newRewriteClient(srv.URL, chicagoCrimeURL),
		lookbackDays: 30,
		recentDays:   7,
	}

	_, err := a.fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
	// A decode failure abandons the tier; only a rejected query earns the
	// plain re-query.
	assert.Equal(t, int32(1), calls.Load())
}

func TestChicagoAdapter_NoRetryOnTimeout(t *testing.T) {
	frozenClock(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	a := &chicagoAdapter{
		client:       newRewriteClient(srv.URL, chicagoCrimeURL),
		lookbackDays: 30,
		recentDays:   7,
	}

	_, err := a.fetch(ctx)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestChicagoAdapter_EmptyDatasetAdvancesChain(t *testing.T) {
	frozenClock(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := &chicagoAdapter{
		client:       newRewriteClient(srv.URL, chicagoCrimeURL),
		lookbackDays: 30,
		recentDays:   7,
	}

	result, err := a.fetch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestChicagoAdapter_RecentCountCapped(t *testing.T) {
	frozenClock(t)

	var records []map[string]string
	for i := 0; i < 50; i++ {
		records = append(records, map[string]string{"primary_type": "NARCOTICS", "date": "2024-06-14T10:00:00"})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	}))
	defer srv.Close()

	a := &chicagoAdapter{
		client:       newRewriteClient(srv.URL, chicagoCrimeURL),
		lookbackDays: 30,
		recentDays:   7,
	}

	result, err := a.fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 30, result.RecentIncidentCount)
}
