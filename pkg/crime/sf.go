package crime

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/risk-agent/internal/model"
)

const (
	sfIncidentURL = "https://data.sfgov.org/resource/wg3w-h783.json"
	sfTimeout     = 8 * time.Second
	sfScale       = 11
)

var sfKeywords = categoryKeywords{
	violent:  []string{"assault", "homicide", "rape", "robbery"},
	property: []string{"theft", "burglary", "larceny", "vehicle"},
}

// sfAdapter queries the San Francisco incident dataset.
type sfAdapter struct {
	client *http.Client
}

func (a *sfAdapter) provenance() string { return model.CrimeSourceSF }

func (a *sfAdapter) fetch(ctx context.Context) (*model.CrimeResult, error) {
	params := url.Values{
		"$limit": {"500"},
		"$order": {"date DESC"},
	}

	records, err := fetchRecords(ctx, a.client, sfIncidentURL, params, sfTimeout)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	violent, property := countCategories(records, func(rec map[string]any) string {
		return fieldString(rec, "category", "incident_category")
	}, sfKeywords)

	total := len(records)
	recent := total / 25
	if recent > 20 {
		recent = 20
	}

	zap.L().Info("crime: sf records analyzed",
		zap.Int("total", total),
		zap.Int("violent", violent),
		zap.Int("property", property),
	)

	return &model.CrimeResult{
		ViolentCrimeIndex:   crimeIndex(violent, total, sfScale, 20),
		PropertyCrimeIndex:  crimeIndex(property, total, sfScale, 15),
		RecentIncidentCount: recent,
		Provenance:          a.provenance(),
	}, nil
}
