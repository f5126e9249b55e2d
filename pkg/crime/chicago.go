package crime

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/risk-agent/internal/model"
)

const (
	chicagoCrimeURL = "https://data.cityofchicago.org/resource/ijzp-q8t2.json"
	chicagoTimeout  = 10 * time.Second
	chicagoScale    = 15
	chicagoLimit    = 1000
)

var chicagoKeywords = categoryKeywords{
	violent:  []string{"assault", "battery", "homicide", "robbery", "weapons", "criminal sexual"},
	property: []string{"theft", "burglary", "motor vehicle theft", "arson"},
}

// chicagoAdapter queries the Chicago open data portal (Socrata). It is the
// only adapter with a server-side date filter; the others rely on the portal's
// default recency ordering.
type chicagoAdapter struct {
	client       *http.Client
	lookbackDays int
	recentDays   int
}

func (a *chicagoAdapter) provenance() string { return model.CrimeSourceChicago }

func (a *chicagoAdapter) fetch(ctx context.Context) (*model.CrimeResult, error) {
	now := clock.Now()
	lookbackCutoff := now.AddDate(0, 0, -a.lookbackDays).Format("2006-01-02")
	recentCutoff := now.AddDate(0, 0, -a.recentDays).Format("2006-01-02")

	params := url.Values{
		"$limit": {strconv.Itoa(chicagoLimit)},
		"$order": {"date DESC"},
		"$where": {"date >= '" + lookbackCutoff + "'"},
	}

	records, err := fetchRecords(ctx, a.client, chicagoCrimeURL, params, chicagoTimeout)
	if err != nil {
		// Schema changes occasionally make the portal reject the date
		// filter; one plain query without it is part of this tier.
		// Timeouts and malformed payloads abandon the tier instead.
		var sErr *statusError
		if !errors.As(err, &sErr) {
			return nil, err
		}
		params.Del("$where")
		records, err = fetchRecords(ctx, a.client, chicagoCrimeURL, params, chicagoTimeout)
		if err != nil {
			return nil, err
		}
	}
	if len(records) == 0 {
		return nil, nil
	}

	violent, property := countCategories(records, func(rec map[string]any) string {
		return fieldString(rec, "primary_type", "primary_type_description")
	}, chicagoKeywords)

	recent := 0
	for _, rec := range records {
		if d := fieldString(rec, "date"); d != "" && d >= recentCutoff {
			recent++
		}
	}
	if recent > 30 {
		recent = 30
	}

	total := len(records)
	zap.L().Info("crime: chicago records analyzed",
		zap.Int("total", total),
		zap.Int("violent", violent),
		zap.Int("property", property),
		zap.Int("recent", recent),
	)

	return &model.CrimeResult{
		ViolentCrimeIndex:   crimeIndex(violent, total, chicagoScale, 20),
		PropertyCrimeIndex:  crimeIndex(property, total, chicagoScale, 15),
		RecentIncidentCount: recent,
		Provenance:          a.provenance(),
	}, nil
}
