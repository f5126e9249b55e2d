package crime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// statusError is a non-200 portal response, kept distinct from transport and
// decode failures so adapters can tell a rejected query apart from a dead or
// misbehaving portal.
type statusError struct {
	endpoint string
	code     int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("crime: %s returned status %d", e.endpoint, e.code)
}

// fetchRecords runs a Socrata-style GET with its own timeout and decodes the
// JSON array of incident records.
func fetchRecords(ctx context.Context, client *http.Client, endpoint string, params url.Values, timeout time.Duration) ([]map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "crime: build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "crime: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{endpoint: endpoint, code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "crime: read body")
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, eris.Wrap(err, "crime: parse response")
	}

	return records, nil
}

// fieldString returns the first non-empty string among the given record keys.
// City portals rename offense fields between dataset revisions, so adapters
// probe a few candidates.
func fieldString(record map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := record[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// categoryKeywords partitions offense descriptions into violent vs property.
type categoryKeywords struct {
	violent  []string
	property []string
}

// countCategories tallies violent and property matches over the records.
// A record matching a violent keyword is not also counted as property.
func countCategories(records []map[string]any, describe func(map[string]any) string, kw categoryKeywords) (violent, property int) {
	for _, rec := range records {
		desc := strings.ToLower(describe(rec))
		if desc == "" {
			continue
		}
		if containsAny(desc, kw.violent) {
			violent++
		} else if containsAny(desc, kw.property) {
			property++
		}
	}
	return violent, property
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// crimeIndex scales a category ratio to a 0-100 index:
// min(100, max(floor, ratio*100*scale)).
func crimeIndex(count, total int, scale float64, floor int) int {
	ratio := float64(count) / math.Max(float64(total), 1)
	idx := int(ratio * 100 * scale)
	if idx < floor {
		idx = floor
	}
	if idx > 100 {
		idx = 100
	}
	return idx
}
