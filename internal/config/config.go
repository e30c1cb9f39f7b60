package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Exchange struct {
		Name       string   `yaml:"name"`
		BaseURL    string   `yaml:"base_url"`
		Pairs      []string `yaml:"pairs"`
		Timeframes []string `yaml:"timeframes"`
		KlineLimit int      `yaml:"kline_limit"`
		DepthLimit int      `yaml:"depth_limit"`
	} `yaml:"exchange"`
	Rules Rules      `yaml:"rules"`
	Risk  RiskConfig `yaml:"risk"`

	// Overrides is a flat map of recognized keys (FAST_SMA, RSI_PERIOD, ...)
	// applied on top of the typed sections, once, at load time.
	Overrides map[string]float64 `yaml:"overrides"`

	Schedule struct {
		EvaluateCron string `yaml:"evaluate_cron"`
		ReportCron   string `yaml:"report_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Account struct {
		StateFile      string  `yaml:"state_file"`
		InitialBalance float64 `yaml:"initial_balance"`
	} `yaml:"account"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, defaults, and the flat rule/risk override map.
func Load(path string) (*Config, error) {
	cfg := &Config{Rules: DefaultRules(), Risk: DefaultRiskConfig()}

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
	if v := os.Getenv("EXCHANGE_BASE_URL"); v != "" {
		cfg.Exchange.BaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.Exchange.Name == "" {
		cfg.Exchange.Name = "binance"
	}
	if cfg.Exchange.BaseURL == "" {
		cfg.Exchange.BaseURL = "https://api.binance.com"
	}
	if len(cfg.Exchange.Pairs) == 0 {
		cfg.Exchange.Pairs = []string{"BTCUSDT"}
	}
	if len(cfg.Exchange.Timeframes) == 0 {
		cfg.Exchange.Timeframes = []string{"1m"}
	}
	if cfg.Exchange.KlineLimit == 0 {
		cfg.Exchange.KlineLimit = 200
	}
	if cfg.Exchange.DepthLimit == 0 {
		cfg.Exchange.DepthLimit = 100
	}
	if cfg.Schedule.EvaluateCron == "" {
		cfg.Schedule.EvaluateCron = "0 */5 * * * *"
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 8 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tradesentinel.db"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Account.StateFile == "" {
		cfg.Account.StateFile = "data/account_state.json"
	}
	if cfg.Account.InitialBalance == 0 {
		cfg.Account.InitialBalance = 1000
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := ApplyOverrides(&cfg.Rules, &cfg.Risk, cfg.Overrides); err != nil {
		return nil, fmt.Errorf("apply overrides: %w", err)
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is internally consistent.
func (c *Config) Validate() error {
	r := c.Rules
	if r.FastSMA <= 0 || r.SlowSMA <= 0 {
		return fmt.Errorf("rules: SMA windows must be positive")
	}
	if r.FastSMA >= r.SlowSMA {
		return fmt.Errorf("rules: fast_sma (%d) must be shorter than slow_sma (%d)", r.FastSMA, r.SlowSMA)
	}
	if r.RSIPeriod <= 0 {
		return fmt.Errorf("rules: rsi_period must be positive")
	}
	if r.RSIBuyMin > r.RSIBuyMax || r.RSISellMin > r.RSISellMax {
		return fmt.Errorf("rules: RSI bands must have min <= max")
	}
	if r.MinSignalScore < 1 {
		return fmt.Errorf("rules: min_signal_score must be at least 1")
	}
	if r.VolumeSpikeMultiplier <= 0 {
		return fmt.Errorf("rules: volume_spike_multiplier must be positive")
	}
	if c.Risk.RiskPerTradePct <= 0 || c.Risk.MaxPositionPct <= 0 {
		return fmt.Errorf("risk: percentages must be positive")
	}
	if c.Risk.ATRPeriod <= 0 {
		return fmt.Errorf("risk: atr_period must be positive")
	}
	if c.Risk.ATRMultiplierSL <= 0 || c.Risk.ATRMultiplierTP <= 0 {
		return fmt.Errorf("risk: ATR multipliers must be positive")
	}
	if len(c.Exchange.Pairs) == 0 {
		return fmt.Errorf("exchange: at least one pair is required")
	}
	return nil
}
