package crime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/risk-agent/internal/model"
)

func TestLAAdapter_Fetch(t *testing.T) {
	records := []map[string]string{
		{"crm_cd_desc": "BATTERY - SIMPLE ASSAULT"},
		{"crm_cd_desc": "BURGLARY FROM VEHICLE"},
	}
	for i := 0; i < 23; i++ {
		records = append(records, map[string]string{"crm_cd_desc": "VANDALISM"})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "date_occ DESC", r.URL.Query().Get("$order"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	}))
	defer srv.Close()

	a := &laAdapter{client: newRewriteClient(srv.URL, laCrimeURL)}

	result, err := a.fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	// 1/25 in each category: int(1/25 * 100 * 13) = 52.
	assert.Equal(t, 52, result.ViolentCrimeIndex)
	assert.Equal(t, 52, result.PropertyCrimeIndex)
	assert.Equal(t, 1, result.RecentIncidentCount)
	assert.Equal(t, model.CrimeSourceLA, result.Provenance)
}

func TestSFAdapter_Fetch(t *testing.T) {
	records := []map[string]string{
		{"category": "ROBBERY"},
		{"category": "LARCENY THEFT"},
	}
	for i := 0; i < 18; i++ {
		records = append(records, map[string]string{"category": "NON-CRIMINAL"})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	}))
	defer srv.Close()

	a := &sfAdapter{client: newRewriteClient(srv.URL, sfIncidentURL)}

	result, err := a.fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	// 1/20 in each category: int(1/20 * 100 * 11) = 55.
	assert.Equal(t, 55, result.ViolentCrimeIndex)
	assert.Equal(t, 55, result.PropertyCrimeIndex)
	assert.Equal(t, 0, result.RecentIncidentCount)
	assert.Equal(t, model.CrimeSourceSF, result.Provenance)
}

func TestSFAdapter_FloorsApplyWithNoMatches(t *testing.T) {
	records := []map[string]string{{"category": "NON-CRIMINAL"}, {"category": "NON-CRIMINAL"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	}))
	defer srv.Close()

	a := &sfAdapter{client: newRewriteClient(srv.URL, sfIncidentURL)}

	result, err := a.fetch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 20, result.ViolentCrimeIndex)
	assert.Equal(t, 15, result.PropertyCrimeIndex)
}
