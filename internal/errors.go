package internal

import "errors"

var (
	ErrUnknownCoin    = errors.New("unknown coin")
	ErrUnknownMetric  = errors.New("unknown metric")
	ErrEmptySelection = errors.New("no records in selected range")
)
