package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/commentgrid/internal/cache"
	"github.com/rshade/commentgrid/internal/pagination"
)

// Environment variables that override the config file.
const (
	EnvHome         = "COMMENTGRID_HOME"
	EnvEndpoint     = "COMMENTGRID_ENDPOINT"
	EnvPageSize     = "COMMENTGRID_PAGE_SIZE"
	EnvPageLatency  = "COMMENTGRID_PAGE_LATENCY"
	EnvLogLevel     = "COMMENTGRID_LOG_LEVEL"
	EnvLogFormat    = "COMMENTGRID_LOG_FORMAT"
	EnvLogFile      = "COMMENTGRID_LOG_FILE"
	EnvCacheEnabled = "COMMENTGRID_CACHE_ENABLED"
	EnvCacheTTL     = "COMMENTGRID_CACHE_TTL_SECONDS"
	EnvCacheDir     = "COMMENTGRID_CACHE_DIR"
)

// Defaults.
const (
	CurrentVersion            = "1.0.0"
	DefaultEndpoint           = "https://jsonplaceholder.typicode.com/comments"
	DefaultTimeout            = 15 * time.Second
	DefaultUserAgent          = "commentgrid"
	DefaultRequestsPerSecond  = 5.0
	DefaultPageLatency        = 2 * time.Second
	DefaultCacheTTLSeconds    = 3600
	DefaultOutputFormat       = "table"
	defaultHomeDirName        = ".commentgrid"
	configFileName            = "config.yaml"
	maxPageLatency            = time.Minute
	minMaxButtons             = pagination.DefaultMaxButtons
	maxMaxButtons             = 15
	outputTypeFile            = "file"
	configDirPerm             = 0o750
	configFilePerm            = 0o600
	defaultLoggingLevel       = "info"
	defaultLoggingFormat      = "console"
	defaultCacheDirectoryName = "cache"
)

// Validation errors.
var (
	ErrInvalidEndpoint   = errors.New("source.endpoint must be an absolute http(s) URL")
	ErrInvalidTimeout    = errors.New("source.timeout must be > 0")
	ErrInvalidRate       = errors.New("source.requests_per_second must be > 0")
	ErrInvalidPageSize   = errors.New("pagination.page_size is out of range")
	ErrInvalidMaxButtons = fmt.Errorf("pagination.max_buttons must be between %d and %d", minMaxButtons, maxMaxButtons)
	ErrInvalidLatency    = fmt.Errorf("pagination.page_latency must be between 0 and %s", maxPageLatency)
	ErrInvalidCacheTTL   = errors.New("cache.ttl_seconds must be > 0 when the cache is enabled")
	ErrInvalidLogFormat  = errors.New("logging.format must be 'console' or 'json'")
	ErrInvalidOutput     = errors.New("output.default_format must be 'table', 'json' or 'yaml'")
)

// Config is the commentgrid configuration file.
type Config struct {
	Version    string           `yaml:"version"`
	Source     SourceConfig     `yaml:"source"`
	Pagination PaginationConfig `yaml:"pagination"`
	Cache      CacheConfig      `yaml:"cache"`
	Logging    LoggingConfig    `yaml:"logging"`
	Output     OutputConfig     `yaml:"output"`

	configPath string
}

// SourceConfig controls the comment endpoint.
type SourceConfig struct {
	Endpoint          string        `yaml:"endpoint"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

// PaginationConfig controls paging and the footer.
type PaginationConfig struct {
	PageSize    int           `yaml:"page_size"`
	MaxButtons  int           `yaml:"max_buttons"`
	PageLatency time.Duration `yaml:"page_latency"`
}

// CacheConfig controls the on-disk response cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Directory  string `yaml:"directory"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// HomeDir returns $COMMENTGRID_HOME or ~/.commentgrid.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), defaultHomeDirName)
	}
	return filepath.Join(home, defaultHomeDirName)
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// Default returns a Config populated with defaults only.
func Default() *Config {
	home := HomeDir()
	return &Config{
		Version: CurrentVersion,
		Source: SourceConfig{
			Endpoint:          DefaultEndpoint,
			Timeout:           DefaultTimeout,
			UserAgent:         DefaultUserAgent,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Pagination: PaginationConfig{
			PageSize:    pagination.DefaultPageSize,
			MaxButtons:  pagination.DefaultMaxButtons,
			PageLatency: DefaultPageLatency,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Directory:  filepath.Join(home, defaultCacheDirectoryName),
			TTLSeconds: DefaultCacheTTLSeconds,
		},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		configPath: filepath.Join(home, configFileName),
	}
}

// New loads the config at the default path, falling back to defaults plus
// environment overrides when the file is unreadable.
func New() *Config {
	cfg, err := Load("")
	if err != nil {
		cfg = Default()
		cfg.applyEnv()
	}
	return cfg
}

// Load reads path (DefaultPath when empty) on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		cfg.configPath = path
	}

	data, err := os.ReadFile(cfg.configPath)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing config %s: %w", cfg.configPath, unmarshalErr)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config %s: %w", cfg.configPath, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from COMMENTGRID_* variables. Unparseable values
// are ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Source.Endpoint = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Pagination.PageSize = n
		}
	}
	if v := os.Getenv(EnvPageLatency); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Pagination.PageLatency = d
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvCacheEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Cache.Enabled = b
		}
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		if n, err := cache.ParseTTL(v); err == nil {
			c.Cache.TTLSeconds = n
		}
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.Cache.Directory = v
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := CheckVersion(c.Version); err != nil {
		return err
	}

	u, err := url.Parse(c.Source.Endpoint)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Source.Endpoint)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.Source.Timeout)
	}
	if c.Source.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidRate, c.Source.RequestsPerSecond)
	}

	if c.Pagination.PageSize < pagination.MinPageSize || c.Pagination.PageSize > pagination.MaxPageSize {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidPageSize, pagination.ErrInvalidPageSize, c.Pagination.PageSize)
	}
	if c.Pagination.MaxButtons < minMaxButtons || c.Pagination.MaxButtons > maxMaxButtons {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxButtons, c.Pagination.MaxButtons)
	}
	if c.Pagination.PageLatency < 0 || c.Pagination.PageLatency > maxPageLatency {
		return fmt.Errorf("%w: got %s", ErrInvalidLatency, c.Pagination.PageLatency)
	}

	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheTTL, c.Cache.TTLSeconds)
	}

	if c.Logging.Format != "" && c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	switch c.Output.DefaultFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutput, c.Output.DefaultFormat)
	}

	return nil
}

// Save writes the config as YAML to ConfigPath, creating the directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if writeErr := os.WriteFile(c.configPath, data, configFilePerm); writeErr != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, writeErr)
	}
	return nil
}

// ConfigPath returns the file this config was loaded from or will save to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

//nolint:gochecknoglobals // The active config is set once per CLI invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// SetGlobalConfig installs cfg as the active configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the active configuration, loading it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// ResetGlobalConfigForTest clears the active configuration.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}
