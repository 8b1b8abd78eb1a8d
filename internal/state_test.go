package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestViewStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.json")

	view, err := LoadView(path)
	if err != nil {
		t.Fatalf("LoadView missing: %v", err)
	}
	if !view.IsZero() {
		t.Fatalf("missing file should give zero view, got %+v", view)
	}

	want := ViewFile{Coin: "ethereum", Metric: MarketCap, Start: day(2), End: day(20)}
	if err := SaveView(path, want); err != nil {
		t.Fatalf("SaveView: %v", err)
	}
	got, err := LoadView(path)
	if err != nil {
		t.Fatalf("LoadView: %v", err)
	}
	if got.Coin != want.Coin || got.Metric != want.Metric || !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadViewCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadView(path); err == nil {
		t.Error("expected decode error")
	}
}
