package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/palog/palog/internal/logging"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the logger options read from palog.yaml and PALOG_* variables.
type Config struct {
	LogToFile              bool   `yaml:"log_to_file" json:"log_to_file" env:"PALOG_LOG_TO_FILE"`
	LogFilePath            string `yaml:"log_file" json:"log_file" env:"PALOG_LOG_FILE"`
	LogDir                 string `yaml:"log_dir" json:"log_dir" env:"PALOG_LOG_DIR"`
	MaxFileSizeBytes       uint32 `yaml:"max_file_size" json:"max_file_size" env:"PALOG_MAX_FILE_SIZE"`
	ConsoleTimestampFormat string `yaml:"timestamp_format" json:"timestamp_format" env:"PALOG_TIMESTAMP_FORMAT"`
	Color                  string `yaml:"color" json:"color" env:"PALOG_COLOR"`
}

// Default returns the logger defaults.
func Default() Config {
	return Config{
		LogToFile:              true,
		LogFilePath:            logging.DefaultLogFilePath,
		MaxFileSizeBytes:       logging.DefaultMaxFileSize,
		ConsoleTimestampFormat: logging.DefaultConsoleTimestampFormat,
		Color:                  ColorAuto,
	}
}

// Load reads path (YAML or JSON, by extension) over the defaults and then
// applies environment overrides. A missing or empty file is skipped. NO_COLOR
// turns an automatic color mode into never.
func Load(path string) (*Config, error) {
	cfg := Default()

	fi, err := os.Stat(path)
	switch {
	case err == nil && fi.Size() > 0:
		// Defaults are set before decoding, so no env-default tags: cleanenv
		// would let them overwrite a false or zero read from the file.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	case err == nil, errors.Is(err, os.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config env: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	// https://no-color.org: any non-empty value turns automatic color off.
	if cfg.Color == ColorAuto && os.Getenv("NO_COLOR") != "" {
		cfg.Color = ColorNever
	}
	return &cfg, nil
}

// Apply pushes the configuration into l through its validating setters.
// Invalid values are skipped and reported together; valid ones still apply.
func (c *Config) Apply(l *logging.Logger) error {
	var errs []error

	l.SetFileLoggingEnabled(c.LogToFile)
	l.SetLogDir(c.LogDir)
	if err := l.SetLogFilePath(c.LogFilePath); err != nil {
		errs = append(errs, err)
	}
	if err := l.SetMaxFileSize(c.MaxFileSizeBytes); err != nil {
		errs = append(errs, err)
	}
	if err := l.SetConsoleTimestampFormat(c.ConsoleTimestampFormat); err != nil {
		errs = append(errs, err)
	}

	switch c.Color {
	case ColorAuto, "":
	case ColorAlways:
		l.SetColor(true)
	case ColorNever:
		l.SetColor(false)
	default:
		errs = append(errs, fmt.Errorf("invalid color mode %q", c.Color))
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
