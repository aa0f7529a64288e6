package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultHTTPTimeoutSec = 20
	defaultEngine         = "demarcate"
	defaultSelector       = "body"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)

const (
	defaultUserAgent  = "demarcate/0.1"
	configFolderName  = "demarcate"
	configFileName    = "config.toml"
	configPathEnvName = "XDG_CONFIG_HOME"
)

var (
	validEngines    = []string{"demarcate", "library"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

type Config struct {
	Engine      string
	Selector    string
	HTTPTimeout time.Duration
	UserAgent   string
	LogLevel    string
	LogFormat   string
}

func Default() Config {
	return Config{
		Engine:      defaultEngine,
		Selector:    defaultSelector,
		HTTPTimeout: defaultHTTPTimeoutSec * time.Second,
		UserAgent:   defaultUserAgent,
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
	}
}

func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	configPath, hasConfig, err := findConfigPath(home)
	if err != nil {
		return Config{}, err
	}
	if hasConfig {
		fileCfg, err := loadFileConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		applyFileConfig(&cfg, fileCfg)
	}

	applyEnvOverrides(&cfg)

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeoutSec * time.Second
	}
	return cfg, nil
}

type fileConfig struct {
	Engine         *string `toml:"engine"`
	Selector       *string `toml:"selector"`
	HTTPTimeoutSec *int    `toml:"http_timeout_seconds"`
	UserAgent      *string `toml:"user_agent"`
	LogLevel       *string `toml:"log_level"`
	LogFormat      *string `toml:"log_format"`
}

func findConfigPath(home string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if xdgConfigHome := strings.TrimSpace(os.Getenv(configPathEnvName)); xdgConfigHome != "" {
		candidates = append(candidates, filepath.Join(xdgConfigHome, configFolderName, configFileName))
	}
	candidates = append(candidates, filepath.Join(home, ".config", configFolderName, configFileName))

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, fmt.Errorf("config path %q is a directory; expected a file", candidate)
			}
			return candidate, true, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		return "", false, fmt.Errorf("failed to read config path %q: %w", candidate, err)
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		unknown := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		sort.Strings(unknown)
		return fileConfig{}, fmt.Errorf("invalid config file %q: unknown key(s): %s", path, strings.Join(unknown, ", "))
	}
	if err := validateFileConfig(path, cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func validateFileConfig(path string, cfg fileConfig) error {
	if cfg.Engine != nil && !oneOf(*cfg.Engine, validEngines) {
		return fmt.Errorf("invalid config file %q: engine must be one of %s", path, strings.Join(validEngines, ", "))
	}
	if cfg.Selector != nil && strings.TrimSpace(*cfg.Selector) == "" {
		return fmt.Errorf("invalid config file %q: selector must be non-empty when provided", path)
	}
	if cfg.HTTPTimeoutSec != nil && *cfg.HTTPTimeoutSec <= 0 {
		return fmt.Errorf("invalid config file %q: http_timeout_seconds must be > 0", path)
	}
	if cfg.LogLevel != nil && !oneOf(*cfg.LogLevel, validLogLevels) {
		return fmt.Errorf("invalid config file %q: log_level must be one of %s", path, strings.Join(validLogLevels, ", "))
	}
	if cfg.LogFormat != nil && !oneOf(*cfg.LogFormat, validLogFormats) {
		return fmt.Errorf("invalid config file %q: log_format must be one of %s", path, strings.Join(validLogFormats, ", "))
	}
	return nil
}

func applyFileConfig(cfg *Config, fileCfg fileConfig) {
	if fileCfg.Engine != nil {
		cfg.Engine = normalize(*fileCfg.Engine)
	}
	if fileCfg.Selector != nil {
		cfg.Selector = strings.TrimSpace(*fileCfg.Selector)
	}
	if fileCfg.HTTPTimeoutSec != nil {
		cfg.HTTPTimeout = time.Duration(*fileCfg.HTTPTimeoutSec) * time.Second
	}
	if fileCfg.UserAgent != nil {
		cfg.UserAgent = *fileCfg.UserAgent
	}
	if fileCfg.LogLevel != nil {
		cfg.LogLevel = normalize(*fileCfg.LogLevel)
	}
	if fileCfg.LogFormat != nil {
		cfg.LogFormat = normalize(*fileCfg.LogFormat)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("DEMARCATE_ENGINE"); ok && oneOf(v, validEngines) {
		cfg.Engine = normalize(v)
	}
	if v, ok := os.LookupEnv("DEMARCATE_SELECTOR"); ok && strings.TrimSpace(v) != "" {
		cfg.Selector = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("DEMARCATE_HTTP_TIMEOUT_SECONDS"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeout = time.Duration(n) * time.Second
		}
	}
	if v, ok := os.LookupEnv("DEMARCATE_USER_AGENT"); ok && v != "" {
		cfg.UserAgent = v
	}
	if v, ok := os.LookupEnv("DEMARCATE_LOG_LEVEL"); ok && oneOf(v, validLogLevels) {
		cfg.LogLevel = normalize(v)
	}
	if v, ok := os.LookupEnv("DEMARCATE_LOG_FORMAT"); ok && oneOf(v, validLogFormats) {
		cfg.LogFormat = normalize(v)
	}
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func oneOf(v string, allowed []string) bool {
	v = normalize(v)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
