package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cuebox/stagehand/internal/config"
	"github.com/cuebox/stagehand/pkg/logging"
)

// Config is the application configuration, merged from flags, environment
// variables, .env files, and an optional YAML config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Source exports
	ConstituentsFile string
	EmailsFile       string
	DonationsFile    string

	// Report destinations
	ConstituentsOut string
	QAOut           string
	TagsOut         string

	// Tag mapping
	TagMappingURL string
	MappingCache  string

	// Column header aliases
	ColumnAliases string

	// Progress bar for long runs
	Progress bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig merges every configuration source below flag level: defaults,
// then the config file, then STAGEHAND_* environment variables. Flags land
// later, when the root command parses them into the returned struct.
func LoadConfig() (*Config, error) {
	// .env files first, so viper's env binding sees their values.
	loadEnvFiles()

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	config.SetDefaults()

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search the home directory and the working directory.
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".stagehand")
		}
	}

	// Read config file if one is present. This runs before the app
	// logger exists, so the package default logger carries the line.
	if err := viper.ReadInConfig(); err == nil {
		logging.Debug().Str("config", viper.ConfigFileUsed()).Msg("Using config file")
	}

	cfg := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		LogLevel:  envOr("LOG_LEVEL", ""),
		LogFormat: envOr("LOG_FORMAT", "auto"),
		LogOutput: envOr("LOG_OUTPUT", "stderr"),
	}
	cfg.applyFileKeys()

	return cfg, nil
}

// applyFileKeys copies the pipeline keys from viper into c. Called on
// initial load and again when an explicit --config file is read.
func (c *Config) applyFileKeys() {
	c.ConstituentsFile = viper.GetString(config.KeyConstituentsFile)
	c.EmailsFile = viper.GetString(config.KeyEmailsFile)
	c.DonationsFile = viper.GetString(config.KeyDonationsFile)
	c.ConstituentsOut = viper.GetString(config.KeyConstituentsOut)
	c.QAOut = viper.GetString(config.KeyQAOut)
	c.TagsOut = viper.GetString(config.KeyTagsOut)
	c.TagMappingURL = viper.GetString(config.KeyTagMappingURL)
	c.MappingCache = viper.GetString(config.KeyMappingCache)
	c.ColumnAliases = viper.GetString(config.KeyColumnAliases)
	c.Progress = viper.GetBool(config.KeyProgress)
}

// loadEnvFiles loads .env.local before .env. godotenv.Load never
// overwrites a variable that is already set, so the local file wins
// where both define a key. Missing files are fine.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// envOr returns the environment variable value, or fallback when unset.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
