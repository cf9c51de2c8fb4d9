package stockfolio

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// AlphaVantageAPIKeyEnv is the environment variable holding the API key.
const AlphaVantageAPIKeyEnv = "ALPHAVANTAGE_API_KEY"

const alphaVantageBase = "https://www.alphavantage.co/query"

// AlphaVantage fetches daily price history from the Alpha Vantage
// TIME_SERIES_DAILY CSV endpoint. Every successful fetch is written to
// <cacheDir>/<symbol>.csv, and when the network is unavailable the provider
// falls back to that cached file.
type AlphaVantage struct {
	APIKey   string
	CacheDir string
	Client   *http.Client
}

// NewAlphaVantage builds a provider caching CSVs under cacheDir. An empty
// cacheDir means the current working directory.
func NewAlphaVantage(apiKey, cacheDir string) *AlphaVantage {
	return &AlphaVantage{
		APIKey:   apiKey,
		CacheDir: cacheDir,
		Client:   http.DefaultClient,
	}
}

// FetchDailyHistory implements QuoteProvider.
func (a *AlphaVantage) FetchDailyHistory(ctx context.Context, symbol string) ([]PricePoint, error) {
	body, fromNetwork, err := a.fetchCSV(ctx, symbol)
	if err != nil {
		return nil, err
	}

	points, err := parseDailyCSV(body)
	if err != nil {
		return nil, fmt.Errorf("parsing daily history for %s: %w", symbol, err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: provider has no data for %s", ErrUnknownSymbol, symbol)
	}

	if fromNetwork {
		if err := os.WriteFile(a.cachePath(symbol), body, 0644); err != nil {
			log.Printf("cache write for %s failed (ignored): %v", symbol, err)
		}
	}
	return points, nil
}

// fetchCSV returns the raw CSV body, from the network when possible, else
// from the on-disk cache.
func (a *AlphaVantage) fetchCSV(ctx context.Context, symbol string) (body []byte, fromNetwork bool, err error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("outputsize", "full")
	q.Set("symbol", symbol)
	q.Set("apikey", a.APIKey)
	q.Set("datatype", "csv")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, alphaVantageBase+"?"+q.Encode(), nil)
	if err != nil {
		return nil, false, err
	}

	resp, netErr := a.client().Do(req)
	if netErr == nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			netErr = fmt.Errorf("GET %s: %s", resp.Request.URL.Host, resp.Status)
		} else {
			body, netErr = io.ReadAll(resp.Body)
		}
	}
	if netErr == nil {
		return body, true, nil
	}

	// Network path failed: fall back to the local CSV cache.
	log.Printf("fetch %s failed (%v), trying local cache", symbol, netErr)
	cached, cacheErr := os.ReadFile(a.cachePath(symbol))
	if cacheErr != nil {
		return nil, false, fmt.Errorf("fetching %s: %w (no usable cache: %v)", symbol, netErr, cacheErr)
	}
	return cached, false, nil
}

// Search queries the SYMBOL_SEARCH endpoint and returns matching symbols.
// The JSON response is picked apart with a jsonpath instead of a dedicated
// response struct, as the endpoint's field names ("1. symbol") don't map to
// Go identifiers.
func (a *AlphaVantage) Search(ctx context.Context, keywords string) ([]string, error) {
	q := url.Values{}
	q.Set("function", "SYMBOL_SEARCH")
	q.Set("keywords", keywords)
	q.Set("apikey", a.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, alphaVantageBase+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("symbol search %q: %w", keywords, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("symbol search %q: %s", keywords, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("symbol search %q: %w", keywords, err)
	}
	jval, err := jsonpath.Get(`$.bestMatches[*]["1. symbol"]`, jobj)
	if err != nil {
		return nil, fmt.Errorf("symbol search %q: %w", keywords, err)
	}

	var symbols []string
	if jlist, ok := jval.([]any); ok {
		for _, v := range jlist {
			if s, ok := v.(string); ok {
				symbols = append(symbols, s)
			}
		}
	}
	return symbols, nil
}

func (a *AlphaVantage) client() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return http.DefaultClient
}

func (a *AlphaVantage) cachePath(symbol string) string {
	return filepath.Join(a.CacheDir, symbol+".csv")
}

// parseDailyCSV parses the provider's CSV: a header line, then
// timestamp,open,high,low,close,volume rows, newest first.
func parseDailyCSV(body []byte) ([]PricePoint, error) {
	cr := csv.NewReader(strings.NewReader(string(body)))
	cr.FieldsPerRecord = 6

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}

	points := make([]PricePoint, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		day, err := ParseDate(rec[0])
		if err != nil {
			return nil, err
		}
		var fields [4]decimal.Decimal
		for i, raw := range rec[1:5] {
			v, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid price %q on %s", raw, rec[0])
			}
			fields[i] = v
		}
		volume, err := strconv.ParseInt(rec[5], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid volume %q on %s", rec[5], rec[0])
		}
		points = append(points, PricePoint{
			Date:   day,
			Open:   fields[0],
			High:   fields[1],
			Low:    fields[2],
			Close:  fields[3],
			Volume: volume,
		})
	}
	return points, nil
}
