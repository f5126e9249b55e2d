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
	nycComplaintURL = "https://data.cityofnewyork.us/resource/qgea-i56i.json"
	nycTimeout      = 8 * time.Second
	nycScale        = 15
)

var nycKeywords = categoryKeywords{
	violent:  []string{"assault", "murder", "rape", "robbery", "weapon", "felony"},
	property: []string{"theft", "burglary", "larceny", "auto", "misdemeanor"},
}

// nycAdapter queries the NYPD complaint dataset.
type nycAdapter struct {
	client *http.Client
}

func (a *nycAdapter) provenance() string { return model.CrimeSourceNYC }

func (a *nycAdapter) fetch(ctx context.Context) (*model.CrimeResult, error) {
	params := url.Values{
		"$limit": {"500"},
		"$order": {"occur_date DESC"},
	}

	records, err := fetchRecords(ctx, a.client, nycComplaintURL, params, nycTimeout)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	violent, property := countCategories(records, func(rec map[string]any) string {
		return fieldString(rec, "offense", "ofns_desc", "law_cat_cd", "pd_desc")
	}, nycKeywords)

	total := len(records)
	recent := total / 25
	if recent > 20 {
		recent = 20
	}

	zap.L().Info("crime: nyc records analyzed",
		zap.Int("total", total),
		zap.Int("violent", violent),
		zap.Int("property", property),
	)

	return &model.CrimeResult{
		ViolentCrimeIndex:   crimeIndex(violent, total, nycScale, 25),
		PropertyCrimeIndex:  crimeIndex(property, total, nycScale, 20),
		RecentIncidentCount: recent,
		Provenance:          a.provenance(),
	}, nil
}
