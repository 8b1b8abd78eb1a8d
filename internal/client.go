package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"ebichart/internal/common"
	"ebichart/internal/util"

	"github.com/klauspost/compress/zstd"
	"github.com/shopspring/decimal"
)

// numField accepts a JSON string, number or null. The data file carries
// numbers as strings.
type numField struct {
	raw     string
	present bool
}

func (f *numField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.raw = strings.TrimSpace(s)
		f.present = f.raw != ""
		return nil
	}
	f.raw = string(b)
	f.present = true
	return nil
}

func (f numField) float() (float64, error) {
	if !f.present {
		return math.NaN(), nil
	}
	d, err := decimal.NewFromString(f.raw)
	if err != nil {
		return 0, err
	}
	v, _ := d.Float64()
	return v, nil
}

type rawRecord struct {
	Date      string   `json:"date"`
	PriceUSD  numField `json:"price_usd"`
	MarketCap numField `json:"market_cap"`
	Volume24h numField `json:"24h_vol"`
}

// Loader fetches and parses the coin data document.
type Loader struct {
	client *http.Client
	logger *util.Logger
}

func NewLoader(timeout time.Duration, logger *util.Logger) *Loader {
	if logger == nil {
		logger = util.NewLogger()
	}
	return &Loader{
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Load reads source (a file path or http(s) URL, optionally .zst compressed).
// Malformed records are skipped and logged; only fetch and decode failures
// are returned.
func (l *Loader) Load(ctx context.Context, source string) (Dataset, error) {
	body, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(source, ".zst") {
		dec, err := zstd.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("zstd reader [%s]: %w", source, err)
		}
		defer dec.Close()
		r = dec
	}

	var raw map[string][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("JSON parse error [%s]: %w", source, err)
	}

	return l.parse(raw), nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open data file [%s]: %w", source, err)
		}
		return file, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("bad request [%s]: %w", source, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed [%s]: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("data fetch error [%s]: %s - %s", source, resp.Status, string(bodyBytes))
	}
	return resp.Body, nil
}

// parse decodes each record on its own so that one malformed element only
// costs that record.
func (l *Loader) parse(raw map[string][]json.RawMessage) Dataset {
	ds := make(Dataset, len(raw))
	for coin, rows := range raw {
		records := make([]Record, 0, len(rows))
		for i, msg := range rows {
			var row rawRecord
			if err := json.Unmarshal(msg, &row); err != nil {
				l.logger.Warn(common.ErrCodeRecordParse, common.ErrMsgRecordParse, err.Error(), "coin", coin, "index", i)
				continue
			}
			rec, err := parseRecord(row)
			if err != nil {
				l.logger.Warn(common.ErrCodeRecordParse, common.ErrMsgRecordParse, err.Error(), "coin", coin, "index", i)
				continue
			}
			records = append(records, rec)
		}

		if !sort.SliceIsSorted(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) }) {
			l.logger.Warn(common.ErrCodeRecordOrder, common.ErrMsgRecordOrder, "sorted records", "coin", coin)
			sort.SliceStable(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
		}

		ds[coin] = records
		l.logger.Debug("Parsed coin", "coin", coin, "records", len(records), "skipped", len(rows)-len(records))
	}
	return ds
}

func parseRecord(row rawRecord) (Record, error) {
	date, err := time.Parse(common.DateLayout, strings.TrimSpace(row.Date))
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q: %w", row.Date, err)
	}

	rec := Record{Date: date}
	fields := []struct {
		name string
		in   numField
		out  *float64
	}{
		{"price_usd", row.PriceUSD, &rec.PriceUSD},
		{"market_cap", row.MarketCap, &rec.MarketCap},
		{"24h_vol", row.Volume24h, &rec.Volume24h},
	}
	for _, f := range fields {
		v, err := f.in.float()
		if err != nil {
			return Record{}, fmt.Errorf("invalid %s %q: %w", f.name, f.in.raw, err)
		}
		*f.out = v
	}
	return rec, nil
}
