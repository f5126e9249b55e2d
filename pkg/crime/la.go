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
	laCrimeURL = "https://data.lacity.org/resource/y9pe-qdrd.json"
	laTimeout  = 8 * time.Second
	laScale    = 13
)

var laKeywords = categoryKeywords{
	violent:  []string{"assault", "homicide", "rape", "robbery", "weapon"},
	property: []string{"theft", "burglary", "auto", "larceny"},
}

// laAdapter queries the Los Angeles open data portal.
type laAdapter struct {
	client *http.Client
}

func (a *laAdapter) provenance() string { return model.CrimeSourceLA }

func (a *laAdapter) fetch(ctx context.Context) (*model.CrimeResult, error) {
	params := url.Values{
		"$limit": {"500"},
		"$order": {"date_occ DESC"},
	}

	records, err := fetchRecords(ctx, a.client, laCrimeURL, params, laTimeout)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	violent, property := countCategories(records, func(rec map[string]any) string {
		return fieldString(rec, "crm_cd_desc", "crm_cd")
	}, laKeywords)

	total := len(records)
	recent := total / 25
	if recent > 20 {
		recent = 20
	}

	zap.L().Info("crime: la records analyzed",
		zap.Int("total", total),
		zap.Int("violent", violent),
		zap.Int("property", property),
	)

	return &model.CrimeResult{
		ViolentCrimeIndex:   crimeIndex(violent, total, laScale, 22),
		PropertyCrimeIndex:  crimeIndex(property, total, laScale, 18),
		RecentIncidentCount: recent,
		Provenance:          a.provenance(),
	}, nil
}
