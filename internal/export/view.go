package export

import (
	"fmt"
	"time"

	"ebichart/internal"
	"ebichart/internal/chart"
	"ebichart/internal/common"
)

// ParseView builds a view from command line values. Empty from/to default to
// the dataset span.
func ParseView(ds internal.Dataset, coin, metric, from, to string) (chart.ViewState, error) {
	m, err := internal.ParseMetric(metric)
	if err != nil {
		return chart.ViewState{}, err
	}

	view := chart.NewView(ds, coin, m)
	if err := view.Validate(ds); err != nil {
		return chart.ViewState{}, err
	}

	start, end := view.Start, view.End
	if from != "" {
		if start, err = time.Parse(common.DateLayout, from); err != nil {
			return chart.ViewState{}, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if to != "" {
		if end, err = time.Parse(common.DateLayout, to); err != nil {
			return chart.ViewState{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return view.WithRange(start, end), nil
}
