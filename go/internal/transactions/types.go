package transactions

const (
	// DefaultScanWeeks covers weeks 0 through 20 of a season.
	DefaultScanWeeks = 21

	DefaultFetchConcurrency = 8
)

// Config controls how much of each season is scanned and how many weekly
// fetches run at once.
type Config struct {
	ScanWeeks        int
	FetchConcurrency int
}

func (c Config) withDefaults() Config {
	if c.ScanWeeks <= 0 {
		c.ScanWeeks = DefaultScanWeeks
	}
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = DefaultFetchConcurrency
	}
	return c
}
