package orbrowser

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the environment-tunable knobs. Every field has a
// default, so a bare environment works out of the box; CLI flags
// override on top.
type Config struct {
	APIURL     string        `envconfig:"ORMODELS_API_URL" default:"https://openrouter.ai/api/v1/models"`
	Timeout    time.Duration `envconfig:"ORMODELS_TIMEOUT" default:"30s"`
	PriceUnit  string        `envconfig:"ORMODELS_PRICE_UNIT" default:"dollars"`
	RawDetail  bool          `envconfig:"ORMODELS_RAW_DETAIL" default:"false"`
	TokenSplit bool          `envconfig:"ORMODELS_TOKEN_SPLIT" default:"true"`
	LogLevel   string        `envconfig:"ORMODELS_LOG_LEVEL" default:"warn"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if _, err := PriceUnitNamed(cfg.PriceUnit); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
