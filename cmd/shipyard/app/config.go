package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
)

// EnvPrefix namespaces every environment variable read by the CLI.
const EnvPrefix = "SHIPYARD"

// Config holds the application configuration loaded from the config file,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	DownloadsDirectory string
	RepositoryIDs      []string
	APIURL             string
	HTTPTimeout        time.Duration
	Concurrency        int
	AutoUpdateInterval time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. SHIPYARD_* environment variables
// 3. .env and .env.local files
// 4. Config file (path, SHIPYARD_CONFIG, or ./data/config.yaml)
// 5. Defaults
//
// A missing file at the default location is not an error. A missing file
// that was asked for explicitly is.
func LoadConfig(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	explicit := true
	if path == "" {
		path = v.GetString("config")
	}
	if path == "" {
		path = constants.DefaultConfigPath
		explicit = false
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "failed to read "+path, err)
		}
	} else if explicit {
		return nil, errors.NewConfigError("config", "cannot open "+path, err)
	}

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		DownloadsDirectory: v.GetString("downloads_directory"),
		RepositoryIDs:      v.GetStringSlice("repository_ids"),
		APIURL:             v.GetString("api_url"),
		HTTPTimeout:        v.GetDuration("http_timeout"),
		Concurrency:        v.GetInt("concurrency"),
		AutoUpdateInterval: v.GetDuration("auto_update_interval"),

		// An empty level lets -v and -q decide
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// repository_ids: null reads as an empty list
	if config.RepositoryIDs == nil {
		config.RepositoryIDs = []string{}
	}
	if config.DownloadsDirectory == "" {
		config.DownloadsDirectory = constants.DefaultDownloadsPath
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("downloads_directory", constants.DefaultDownloadsPath)
	v.SetDefault("repository_ids", []string{})
	v.SetDefault("api_url", constants.GitHubAPIURL)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("concurrency", constants.DefaultConcurrency)
	v.SetDefault("auto_update_interval", constants.DefaultUpdateInterval)
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides a variable that is already set, so .env.local is loaded first to
// win over .env, and the real environment wins over both.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
