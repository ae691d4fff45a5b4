package config

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Planner PlannerConfig `yaml:"planner" mapstructure:"planner"`
	Weather WeatherConfig `yaml:"weather" mapstructure:"weather"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DataConfig points at the four dataset files loaded at startup.
type DataConfig struct {
	HistoricalPath string `yaml:"historical_path" mapstructure:"historical_path"`
	MarketPath     string `yaml:"market_path" mapstructure:"market_path"`
	SoilPath       string `yaml:"soil_path" mapstructure:"soil_path"`
	CalendarPath   string `yaml:"calendar_path" mapstructure:"calendar_path"`
}

// PlannerConfig configures scoring weights and result shaping.
// Weights must sum to 1.0; the defaults are the production values.
type PlannerConfig struct {
	MarketWeight  float64 `yaml:"market_weight" mapstructure:"market_weight"`
	WeatherWeight float64 `yaml:"weather_weight" mapstructure:"weather_weight"`
	SeasonWeight  float64 `yaml:"season_weight" mapstructure:"season_weight"`
	SoilWeight    float64 `yaml:"soil_weight" mapstructure:"soil_weight"`
	RiskWeight    float64 `yaml:"risk_weight" mapstructure:"risk_weight"`
	TopN          int     `yaml:"top_n" mapstructure:"top_n"`
}

// WeatherConfig configures the forecast provider client.
type WeatherConfig struct {
	BaseURL        string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs    int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// ServerConfig configures the HTTP front-end.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AGRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.historical_path", "data/crop_production.csv")
	v.SetDefault("data.market_path", "data/mandi_prices.csv")
	v.SetDefault("data.soil_path", "data/soil_profiles.csv")
	v.SetDefault("data.calendar_path", "data/crop_calendar.csv")
	v.SetDefault("planner.market_weight", 0.35)
	v.SetDefault("planner.weather_weight", 0.25)
	v.SetDefault("planner.season_weight", 0.15)
	v.SetDefault("planner.soil_weight", 0.15)
	v.SetDefault("planner.risk_weight", 0.10)
	v.SetDefault("planner.top_n", 3)
	v.SetDefault("weather.base_url", "https://api.open-meteo.com/v1")
	v.SetDefault("weather.timeout_secs", 10)
	v.SetDefault("weather.requests_per_sec", 2)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks invariants that would silently corrupt scoring if broken.
func (c *Config) Validate() error {
	sum := c.Planner.MarketWeight + c.Planner.WeatherWeight + c.Planner.SeasonWeight +
		c.Planner.SoilWeight + c.Planner.RiskWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return eris.Errorf("config: planner weights must sum to 1.0 (got %.4f)", sum)
	}
	if c.Planner.TopN <= 0 {
		return eris.Errorf("config: planner.top_n must be positive (got %d)", c.Planner.TopN)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
