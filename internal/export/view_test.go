package export

import (
	"errors"
	"testing"

	"ebichart/internal"
)

func TestParseView(t *testing.T) {
	ds := dataset()

	v, err := ParseView(ds, "bitcoin", "market_cap", "", "")
	if err != nil {
		t.Fatalf("ParseView: %v", err)
	}
	if v.Metric != internal.MarketCap || !v.Start.Equal(jan(1)) || !v.End.Equal(jan(3)) {
		t.Errorf("view = %+v", v)
	}

	v, err = ParseView(ds, "bitcoin", "price_usd", "02/01/2017", "03/01/2017")
	if err != nil {
		t.Fatalf("ParseView range: %v", err)
	}
	if !v.Start.Equal(jan(2)) || !v.End.Equal(jan(3)) {
		t.Errorf("range = %v - %v", v.Start, v.End)
	}

	if _, err := ParseView(ds, "dogecoin", "price_usd", "", ""); !errors.Is(err, internal.ErrUnknownCoin) {
		t.Errorf("unknown coin err = %v", err)
	}
	if _, err := ParseView(ds, "bitcoin", "supply", "", ""); !errors.Is(err, internal.ErrUnknownMetric) {
		t.Errorf("unknown metric err = %v", err)
	}
	if _, err := ParseView(ds, "bitcoin", "price_usd", "2017-01-02", ""); err == nil {
		t.Error("expected error for bad date")
	}
}
