// Package config loads expensetrack settings from a TOML or YAML file, an
// optional .env file and EXPENSETRACK_* environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/GustavoCaso/expensetrack/internal/category"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/filter"
	"github.com/GustavoCaso/expensetrack/internal/logger"
)

type Config struct {
	// DataFile is the CSV or JSON file to load. Empty means the built-in
	// sample data.
	DataFile   string            `toml:"data_file" yaml:"data_file"`
	Currency   string            `toml:"currency" yaml:"currency"`
	Logger     logger.Config     `toml:"logger" yaml:"logger"`
	Filter     FilterConfig      `toml:"filter" yaml:"filter"`
	Categories map[string]string `toml:"categories" yaml:"categories"`
}

// FilterConfig holds the default amount bounds as dollar strings.
type FilterConfig struct {
	MinAmount string `toml:"min_amount" yaml:"min_amount"`
	MaxAmount string `toml:"max_amount" yaml:"max_amount"`
}

const (
	envPrefix = "EXPENSETRACK_"

	defaultCurrency  = "$"
	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
	defaultEnvFile   = ".env"
)

var ErrInvalidConfig = errors.New("invalid config")

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Currency: defaultCurrency,
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
		Filter: FilterConfig{
			MinAmount: expense.Dollars(filter.DefaultMinAmount).StringFixed(2),
			MaxAmount: expense.Dollars(filter.DefaultMaxAmount).StringFixed(2),
		},
	}
}

// Parse builds the configuration. file may be empty. envFiles default to
// ".env" in the working directory; missing env files are skipped.
func Parse(file string, envFiles ...string) (*Config, error) {
	conf := Default()

	if file != "" {
		if err := conf.parseFile(file); err != nil {
			return nil, err
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	conf.parseEnv()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) parseFile(file string) error {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, c)
	case ".toml", "":
		err = toml.Unmarshal(bytes, c)
	default:
		return fmt.Errorf("%w: unsupported config file %s", ErrInvalidConfig, file)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", file, err)
	}

	return nil
}

func (c *Config) parseEnv() {
	overrides := map[string]*string{
		"DATA_FILE":  &c.DataFile,
		"CURRENCY":   &c.Currency,
		"LOG_OUTPUT": &c.Logger.Output,
		"MIN_AMOUNT": &c.Filter.MinAmount,
		"MAX_AMOUNT": &c.Filter.MaxAmount,
	}
	for name, field := range overrides {
		if v := os.Getenv(envPrefix + name); v != "" {
			*field = v
		}
	}

	if level := os.Getenv(envPrefix + "LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv(envPrefix + "LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}
}

// Validate normalises the logger settings and checks amounts and category
// patterns, reporting every problem found.
func (c *Config) Validate() error {
	var errs []error

	if level, err := logger.ParseLevel(string(c.Logger.Level)); err != nil {
		errs = append(errs, err)
	} else {
		c.Logger.Level = level
	}

	if format, err := logger.ParseFormat(string(c.Logger.Format)); err != nil {
		errs = append(errs, err)
	} else {
		c.Logger.Format = format
	}

	if _, _, err := c.AmountRange(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.CategoryMatcher(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// AmountRange returns the default filter bounds in cents.
func (c *Config) AmountRange() (int64, int64, error) {
	minAmount, err := expense.ParseAmount(c.Filter.MinAmount)
	if err != nil {
		return 0, 0, fmt.Errorf("filter.min_amount: %w", err)
	}

	maxAmount, err := expense.ParseAmount(c.Filter.MaxAmount)
	if err != nil {
		return 0, 0, fmt.Errorf("filter.max_amount: %w", err)
	}

	if minAmount > maxAmount {
		return 0, 0, fmt.Errorf("filter.min_amount %s is above filter.max_amount %s", c.Filter.MinAmount, c.Filter.MaxAmount)
	}

	return minAmount, maxAmount, nil
}

// CategoryMatcher compiles the configured category patterns, or the
// default rules when none are configured.
func (c *Config) CategoryMatcher() (*category.Matcher, error) {
	if len(c.Categories) == 0 {
		return category.NewMatcher(category.DefaultRules)
	}

	rules, err := category.RulesFromPatterns(c.Categories)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	matcher, err := category.NewMatcher(rules)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	return matcher, nil
}
