// Package config centralises configuration parsing for the exporter.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/kyoshidajp/jognote/internal/domain"
)

// Config captures runtime configuration for one export run.
type Config struct {
	UserID   string // JogNote login id; OpenID accounts are not supported
	Password string

	StartDate string // yyyy/mm, empty means the service epoch
	EndDate   string // yyyy/mm, empty means today

	OutputPath string
	BaseURL    string

	SleepInterval  time.Duration // politeness delay between origin requests
	RequestTimeout time.Duration
	MaxRetries     uint64 // retries per request on transient failure

	MetricsAddress string // empty disables the metrics listener
	Verbose        bool
}

// SetDefaults registers environment bindings and defaults. Call once before
// binding CLI flags on top.
func SetDefaults() {
	viper.SetEnvPrefix("JOGNOTE")
	viper.AutomaticEnv()

	viper.SetDefault("base_url", "http://www.jognote.com")
	viper.SetDefault("output", "export.csv")
	viper.SetDefault("sleep_interval", 2*time.Second)
	viper.SetDefault("request_timeout", 10*time.Second)
	viper.SetDefault("max_retries", 3)
	viper.SetDefault("metrics_address", "")
}

// Load reads the resolved settings into a Config.
func Load() Config {
	return Config{
		UserID:         viper.GetString("userid"),
		Password:       viper.GetString("password"),
		StartDate:      viper.GetString("startdate"),
		EndDate:        viper.GetString("enddate"),
		OutputPath:     viper.GetString("output"),
		BaseURL:        viper.GetString("base_url"),
		SleepInterval:  viper.GetDuration("sleep_interval"),
		RequestTimeout: viper.GetDuration("request_timeout"),
		MaxRetries:     uint64(viper.GetInt("max_retries")),
		MetricsAddress: viper.GetString("metrics_address"),
		Verbose:        viper.GetBool("verbose"),
	}
}

// Validate rejects configurations that must fail before any network call.
func (c Config) Validate() error {
	if c.UserID == "" || c.Password == "" {
		return fmt.Errorf("%w: userid and password are required", domain.ErrConfig)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url is empty", domain.ErrConfig)
	}
	return nil
}
