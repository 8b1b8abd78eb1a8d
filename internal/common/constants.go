package common

import "time"

const (
	DefaultConfigPath   = "./configs/config.yml"
	DefaultDataSource   = "./data/coins.json"
	DefaultCoin         = "bitcoin"
	DefaultMetric       = "price_usd"
	DefaultTransitionMs = 100
	DefaultYTicks       = 6
	DefaultFetchTimeout = 10 * time.Second
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "Coin Stats"
	DefaultLogLevel     = "info"

	// DateLayout is the record date format of the data file (dd/mm/yyyy).
	DateLayout = "02/01/2006"

	EnvDataSource = "EBICHART_DATA_SOURCE"
	EnvLogLevel   = "EBICHART_LOG_LEVEL"
	EnvStateFile  = "EBICHART_STATE_FILE"
)
