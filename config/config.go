package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quantrlabs/hedgecalc/dv01"
)

// Config is the complete tool configuration: the what-if position, the
// futures contract conventions, data locations, backtest parameters, and
// the dashboard listen address.
type Config struct {
	Position PositionConfig `json:"position" yaml:"position"`
	Contract ContractConfig `json:"contract" yaml:"contract"`
	Data     DataConfig     `json:"data" yaml:"data"`
	Backtest BacktestConfig `json:"backtest" yaml:"backtest"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// PositionConfig is the default ETF holding the dashboard opens with.
type PositionConfig struct {
	Units    int64   `json:"units" yaml:"units"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// ContractConfig overrides the futures contract conventions.
type ContractConfig struct {
	CTDDV01          float64 `json:"ctd_dv01" yaml:"ctd_dv01"`
	ConversionFactor float64 `json:"conversion_factor" yaml:"conversion_factor"`
}

// DataConfig locates the price series.
type DataConfig struct {
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Pair    string `json:"pair" yaml:"pair"`
}

// BacktestConfig carries the spread-strategy parameters.
type BacktestConfig struct {
	InitialCapital float64 `json:"initial_capital" yaml:"initial_capital"`
	MarginRate     float64 `json:"margin_rate" yaml:"margin_rate"`
	TickETF        float64 `json:"tick_etf" yaml:"tick_etf"`
	TickFut        float64 `json:"tick_fut" yaml:"tick_fut"`
	StopGain       float64 `json:"stop_gain" yaml:"stop_gain"`
	StopLoss       float64 `json:"stop_loss" yaml:"stop_loss"`
	SignalShift    int     `json:"signal_shift" yaml:"signal_shift"`
}

// ServerConfig configures the dashboard HTTP server.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content; YAML is tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON
// otherwise).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration against the calculator's input
// constraints so bad values fail at startup, not mid-request.
func (c *Config) Validate() error {
	if c.Position.Units < 0 {
		return fmt.Errorf("position.units must be non-negative")
	}
	if c.Position.Duration <= 0 {
		return fmt.Errorf("position.duration must be positive")
	}
	if c.Contract.CTDDV01 <= 0 {
		return fmt.Errorf("contract.ctd_dv01 must be positive")
	}
	if c.Contract.ConversionFactor <= 0 || c.Contract.ConversionFactor > 1 {
		return fmt.Errorf("contract.conversion_factor must be in (0, 1]")
	}
	if c.Data.Pair == "" {
		return fmt.Errorf("data.pair is required")
	}
	if c.Backtest.InitialCapital <= 0 {
		return fmt.Errorf("backtest.initial_capital must be positive")
	}
	if c.Backtest.MarginRate <= 0 || c.Backtest.MarginRate >= 1 {
		return fmt.Errorf("backtest.margin_rate must be in (0, 1)")
	}
	if c.Backtest.StopGain <= 0 || c.Backtest.StopLoss <= 0 {
		return fmt.Errorf("backtest stop_gain and stop_loss must be positive")
	}
	if c.Backtest.SignalShift < 0 {
		return fmt.Errorf("backtest.signal_shift must be non-negative")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Default returns the conventions of the modeled pair: the 7-10y
// policy-bank-bond ETF hedged with 10-year treasury futures.
func Default() *Config {
	return &Config{
		Position: PositionConfig{
			Units:    100_000,
			Duration: dv01.DefaultETFDuration,
		},
		Contract: ContractConfig{
			CTDDV01:          dv01.DefaultCTDDV01,
			ConversionFactor: dv01.DefaultConversionFactor,
		},
		Data: DataConfig{
			DBPath: "./hedgecalc.sqlite",
			Pair:   "511520/T",
		},
		Backtest: BacktestConfig{
			InitialCapital: 10_000_000,
			MarginRate:     0.10,
			TickETF:        0.001,
			TickFut:        0.005,
			StopGain:       0.005,
			StopLoss:       0.005,
			SignalShift:    5,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
