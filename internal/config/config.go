package config

import (
	stderrors "errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/pkg/discovery"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "gallery.json"

	// EnvFileName is the dotenv file loaded before the environment is read.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "GALLERY"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// EnvDevelopment enables development-only features.
	EnvDevelopment = "development"

	// EnvProduction is the default environment.
	EnvProduction = "production"
)

// Source kinds.
const (
	SourceFS = "fs"
	SourceS3 = "s3"
)

// Config is the complete server configuration.
type Config struct {
	// Env is the environment name. "development" enables the dev overlay.
	Env string `mapstructure:"env"`

	Server    ServerConfig    `mapstructure:"server"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts"`
	Source    SourceConfig    `mapstructure:"source"`
	Dev       DevConfig       `mapstructure:"dev"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Log       LogConfig       `mapstructure:"log"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// ServerConfig contains listener settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Title is the site title shown in page titles.
	Title string `mapstructure:"title"`
}

// ArtifactsConfig describes where pages live.
type ArtifactsConfig struct {
	// Dir is the directory the fs source reads from.
	Dir string `mapstructure:"dir"`

	// Root is the source path prefix of every page (also the S3 key prefix).
	Root string `mapstructure:"root"`

	// Ext restricts pages to one extension. Empty accepts every
	// supported format.
	Ext string `mapstructure:"ext"`

	// Index is the logical path of the listing page.
	Index string `mapstructure:"index"`
}

// SourceConfig selects the discovery source.
type SourceConfig struct {
	// Kind is "fs" or "s3".
	Kind string `mapstructure:"kind"`

	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	PathStyle bool   `mapstructure:"pathStyle"`

	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

// DevConfig contains development settings. They only apply when Env is
// "development".
type DevConfig struct {
	// Overlay enables the diagnostic toolbar.
	Overlay bool `mapstructure:"overlay"`

	// OverlayTemplate is an optional HTML file rendered inside the toolbar.
	OverlayTemplate string `mapstructure:"overlayTemplate"`

	// Watch notifies open pages when artifact files change.
	Watch bool `mapstructure:"watch"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	TracerName string `mapstructure:"tracerName"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Env: EnvProduction,
		Server: ServerConfig{
			Host:  DefaultHost,
			Port:  DefaultPort,
			Title: "Gallery",
		},
		Artifacts: ArtifactsConfig{
			Dir:   ".",
			Root:  "artifacts/",
			Index: discovery.DefaultIndex,
		},
		Source: SourceConfig{
			Kind: SourceFS,
		},
		Dev: DevConfig{
			Overlay: true,
			Watch:   true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Tracing: TracingConfig{
			TracerName: "gallery",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory. A missing
// gallery.json or .env is not an error.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, EnvFileName)); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("E121").
			WithDetail("Failed to read " + EnvFileName + ": " + err.Error())
	}
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path and the
// environment.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, New())

	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
		}
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("E121").Wrap(err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to decode configuration: " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// setDefaults registers every key with viper so that AutomaticEnv can
// override keys missing from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("env", d.Env)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.title", d.Server.Title)
	v.SetDefault("artifacts.dir", d.Artifacts.Dir)
	v.SetDefault("artifacts.root", d.Artifacts.Root)
	v.SetDefault("artifacts.ext", d.Artifacts.Ext)
	v.SetDefault("artifacts.index", d.Artifacts.Index)
	v.SetDefault("source.kind", d.Source.Kind)
	v.SetDefault("source.bucket", d.Source.Bucket)
	v.SetDefault("source.region", d.Source.Region)
	v.SetDefault("source.endpoint", d.Source.Endpoint)
	v.SetDefault("source.pathStyle", d.Source.PathStyle)
	v.SetDefault("source.accessKeyId", d.Source.AccessKeyID)
	v.SetDefault("source.secretAccessKey", d.Source.SecretAccessKey)
	v.SetDefault("dev.overlay", d.Dev.Overlay)
	v.SetDefault("dev.overlayTemplate", d.Dev.OverlayTemplate)
	v.SetDefault("dev.watch", d.Dev.Watch)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.tracerName", d.Tracing.TracerName)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()
	if c.Env == "" {
		c.Env = d.Env
	}
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Artifacts.Dir == "" {
		c.Artifacts.Dir = d.Artifacts.Dir
	}
	if c.Artifacts.Index == "" {
		c.Artifacts.Index = d.Artifacts.Index
	}
	if c.Source.Kind == "" {
		c.Source.Kind = d.Source.Kind
	}
	c.Source.Kind = strings.ToLower(c.Source.Kind)
	if c.Metrics.Path == "" {
		c.Metrics.Path = d.Metrics.Path
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		c.Metrics.Path = "/" + c.Metrics.Path
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = d.Tracing.TracerName
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	switch c.Source.Kind {
	case SourceFS:
	case SourceS3:
		if c.Source.Bucket == "" {
			return errors.New("E124").
				WithSuggestion("Set source.bucket or GALLERY_SOURCE_BUCKET")
		}
	default:
		return errors.New("E123").
			WithDetail("Got source.kind " + strconv.Quote(c.Source.Kind))
	}
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// IsDevelopment reports whether the development environment is selected.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

// OverlayEnabled reports whether the dev overlay should be attempted.
func (c *Config) OverlayEnabled() bool {
	return c.IsDevelopment() && c.Dev.Overlay
}

// WatchEnabled reports whether artifact changes should be watched.
func (c *Config) WatchEnabled() bool {
	return c.IsDevelopment() && c.Dev.Watch && c.Source.Kind == SourceFS
}

// Address returns the listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// Convention returns the artifact convention.
func (c *Config) Convention() discovery.Convention {
	return discovery.Convention{
		Root:  c.Artifacts.Root,
		Ext:   c.Artifacts.Ext,
		Index: c.Artifacts.Index,
	}
}

// ArtifactsPath returns the artifacts directory, resolved against the
// directory the config was loaded from.
func (c *Config) ArtifactsPath() string {
	if filepath.IsAbs(c.Artifacts.Dir) || c.configPath == "" {
		return c.Artifacts.Dir
	}
	return filepath.Join(filepath.Dir(c.configPath), c.Artifacts.Dir)
}
