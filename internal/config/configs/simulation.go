package configs

import (
	"github.com/shopspring/decimal"

	"ppcsim/internal/core/engine"
)

// Simulation tunes the engine and the run scheduler. An unset Seed lets
// every run pick a time-derived seed; any value, zero included, makes runs
// without an explicit seed reproducible.
type Simulation struct {
	Seed *int64 `env:"SEED"`
	// FloorBid is the fallback bid for product targets with neither an own
	// bid nor an ad group default. Zero disables the fallback.
	FloorBid decimal.Decimal `env:"FLOOR_BID" envDefault:"0.50"`
	// Conversion is "bernoulli" or "binomial".
	Conversion string `env:"CONVERSION" envDefault:"bernoulli"`
	// Workers bounds how many owners RunWeeks simulates at once.
	Workers int `env:"WORKERS" envDefault:"4"`
	Days    int `env:"DAYS" envDefault:"7"`
}

// EngineConfig overlays the configured values on engine.DefaultConfig. An
// unknown conversion strategy is an error.
func (c Simulation) EngineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	cfg.FloorBid = c.FloorBid
	if c.Days > 0 {
		cfg.Days = c.Days
	}
	strategy, err := engine.ParseConversionStrategy(c.Conversion)
	if err != nil {
		return cfg, err
	}
	cfg.Conversion = strategy
	return cfg, nil
}

// WorkerCount never returns less than one.
func (c Simulation) WorkerCount() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}
