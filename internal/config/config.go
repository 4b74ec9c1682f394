package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"CycleSentinel/internal/model"
	"CycleSentinel/internal/strategy"
)

// Coin is one tracked asset, optionally with a position.
type Coin struct {
	Symbol      string  `yaml:"symbol"`
	CoinGeckoID string  `yaml:"coingecko_id"`
	Quantity    float64 `yaml:"quantity"`
	AvgBuyPrice float64 `yaml:"avg_buy_price"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		APIKey     string `yaml:"api_key"`
		SeriesDays int    `yaml:"series_days"`
	} `yaml:"data_source"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Coins   []Coin `yaml:"coins"`
	Targets struct {
		BTC float64 `yaml:"btc"`
		ETH float64 `yaml:"eth"`
	} `yaml:"targets"`
	PartialExit struct {
		SuppressLossSales *bool `yaml:"suppress_loss_sales"`
	} `yaml:"partial_exit"`
	Strategy strategyOverrides `yaml:"strategy"`
}

// strategyOverrides exposes the engine thresholds most worth tuning.
// Anything left zero (nil for the RCI pointers, where zero is a real
// threshold) keeps its default.
type strategyOverrides struct {
	PiCycleApproach  float64 `yaml:"pi_cycle_approach"`
	RSIExtreme       float64 `yaml:"rsi_extreme"`
	RSIOverbought    float64 `yaml:"rsi_overbought"`
	FearGreedExtreme float64 `yaml:"fear_greed_extreme"`
	FearGreedHigh    float64 `yaml:"fear_greed_high"`
	AltseasonLower   int     `yaml:"altseason_lower_band"`
	AltseasonUpper   int     `yaml:"altseason_upper_band"`
	ExitBand10       int     `yaml:"exit_band_10"`
	ExitBand25       int     `yaml:"exit_band_25"`
	ExitBand50       int     `yaml:"exit_band_50"`
	RCI              struct {
		ExhaustLong  *float64 `yaml:"exhaust_long"`
		ExhaustShort *float64 `yaml:"exhaust_short"`
		WeakenShort  *float64 `yaml:"weaken_short"`
	} `yaml:"rci"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("CRON_ANALYSIS"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Schedule.AnalysisCron == "" {
		cfg.Schedule.AnalysisCron = "0 0 8 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cycle_sentinel.db"
	}
	if cfg.DataSource.SeriesDays == 0 {
		cfg.DataSource.SeriesDays = 365
	}
	if len(cfg.Coins) == 0 {
		cfg.Coins = []Coin{
			{Symbol: "BTC", CoinGeckoID: "bitcoin"},
			{Symbol: "ETH", CoinGeckoID: "ethereum"},
		}
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.SeriesDays < 1 {
		return fmt.Errorf("data_source.series_days must be positive")
	}
	seen := map[string]bool{}
	for _, coin := range c.Coins {
		if coin.Symbol == "" || coin.CoinGeckoID == "" {
			return fmt.Errorf("every coin needs symbol and coingecko_id")
		}
		if coin.Quantity < 0 || coin.AvgBuyPrice < 0 {
			return fmt.Errorf("coin %s: quantity and avg_buy_price must not be negative", coin.Symbol)
		}
		if seen[coin.CoinGeckoID] {
			return fmt.Errorf("duplicate coin %s", coin.CoinGeckoID)
		}
		seen[coin.CoinGeckoID] = true
	}
	if c.Targets.BTC < 0 || c.Targets.ETH < 0 {
		return fmt.Errorf("targets must not be negative")
	}
	return c.validateStrategy()
}

// validateStrategy checks the merged engine thresholds for consistency, so
// a bad override fails at startup instead of silently skewing the advice.
func (c *Config) validateStrategy() error {
	sc := c.StrategyConfig()

	if sc.Thresholds.PiCycleApproach <= 0 || sc.Thresholds.PiCycleApproach >= 1 {
		return fmt.Errorf("strategy.pi_cycle_approach must be between 0 and 1")
	}
	if sc.Thresholds.RSIOverbought >= sc.Thresholds.RSIExtreme || sc.Thresholds.RSIExtreme > 100 {
		return fmt.Errorf("strategy RSI tiers must satisfy rsi_overbought < rsi_extreme <= 100")
	}
	if sc.Thresholds.FearGreedHigh >= sc.Thresholds.FearGreedExtreme || sc.Thresholds.FearGreedExtreme > 100 {
		return fmt.Errorf("strategy fear & greed tiers must satisfy fear_greed_high < fear_greed_extreme <= 100")
	}
	if sc.Thresholds.RCIWeakenShort < sc.Thresholds.RCIExhaustShort {
		return fmt.Errorf("strategy.rci.weaken_short must not be below exhaust_short")
	}
	if sc.Altseason.LowerBand <= 0 || sc.Altseason.LowerBand >= sc.Altseason.UpperBand || sc.Altseason.UpperBand >= 100 {
		return fmt.Errorf("altseason bands must satisfy 0 < lower < upper < 100")
	}
	if sc.Exit.Band10 >= sc.Exit.Band25 || sc.Exit.Band25 >= sc.Exit.Band50 || sc.Exit.Band50 > 100 {
		return fmt.Errorf("exit bands must satisfy exit_band_10 < exit_band_25 < exit_band_50 <= 100")
	}
	return nil
}

// AssetIDs returns the CoinGecko IDs with bitcoin and ethereum guaranteed
// present; the engine always needs both.
func (c *Config) AssetIDs() []string {
	ids := []string{"bitcoin", "ethereum"}
	for _, coin := range c.Coins {
		if coin.CoinGeckoID != "bitcoin" && coin.CoinGeckoID != "ethereum" {
			ids = append(ids, coin.CoinGeckoID)
		}
	}
	return ids
}

// Holdings converts configured coins with positions into model holdings.
func (c *Config) Holdings() []model.Holding {
	var out []model.Holding
	for _, coin := range c.Coins {
		if coin.Quantity <= 0 {
			continue
		}
		out = append(out, model.Holding{
			AssetID:     coin.CoinGeckoID,
			Symbol:      strings.ToUpper(coin.Symbol),
			Quantity:    coin.Quantity,
			AvgBuyPrice: coin.AvgBuyPrice,
		})
	}
	return out
}

// StrategyConfig merges the YAML overrides onto the engine defaults.
func (c *Config) StrategyConfig() strategy.Config {
	sc := strategy.DefaultConfig()
	o := c.Strategy

	if o.PiCycleApproach > 0 {
		sc.Thresholds.PiCycleApproach = o.PiCycleApproach
	}
	if o.RSIExtreme > 0 {
		sc.Thresholds.RSIExtreme = o.RSIExtreme
	}
	if o.RSIOverbought > 0 {
		sc.Thresholds.RSIOverbought = o.RSIOverbought
	}
	if o.FearGreedExtreme > 0 {
		sc.Thresholds.FearGreedExtreme = o.FearGreedExtreme
	}
	if o.FearGreedHigh > 0 {
		sc.Thresholds.FearGreedHigh = o.FearGreedHigh
	}
	if o.AltseasonLower > 0 {
		sc.Altseason.LowerBand = o.AltseasonLower
	}
	if o.AltseasonUpper > 0 {
		sc.Altseason.UpperBand = o.AltseasonUpper
	}
	if o.ExitBand10 > 0 {
		sc.Exit.Band10 = o.ExitBand10
	}
	if o.ExitBand25 > 0 {
		sc.Exit.Band25 = o.ExitBand25
	}
	if o.ExitBand50 > 0 {
		sc.Exit.Band50 = o.ExitBand50
	}
	if o.RCI.ExhaustLong != nil {
		sc.Thresholds.RCIExhaustLong = *o.RCI.ExhaustLong
	}
	if o.RCI.ExhaustShort != nil {
		sc.Thresholds.RCIExhaustShort = *o.RCI.ExhaustShort
	}
	if o.RCI.WeakenShort != nil {
		sc.Thresholds.RCIWeakenShort = *o.RCI.WeakenShort
	}
	if c.PartialExit.SuppressLossSales != nil {
		sc.Exit.SuppressLossSales = *c.PartialExit.SuppressLossSales
	}
	return sc
}
