package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration values,
// e.g. RSA_KEYGEN_PRIME_DIGITS or RSA_LOGGER_LOG_LEVEL.
const EnvPrefix = "RSA"

// CLIConfig is the complete configuration of the rsa-cli application
type CLIConfig struct {
	Logger   LoggerSettings   `mapstructure:"logger"`
	KeyGen   KeyGenSettings   `mapstructure:"keygen"`
	Database DatabaseSettings `mapstructure:"database"`
}

// Validate checks every settings section
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.KeyGen.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeCLIConfig loads the CLI configuration. The YAML file at path is optional;
// an empty path uses defaults and environment variables only.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	keyGen := DefaultKeyGenSettings()
	v.SetDefault("keygen.prime_digits", keyGen.PrimeDigits)
	v.SetDefault("keygen.fermat_trials", keyGen.FermatTrials)
	v.SetDefault("keygen.max_prime_attempts", keyGen.MaxPrimeAttempts)
	v.SetDefault("keygen.default_exponent", keyGen.DefaultExponent)
	v.SetDefault("keygen.exponent_min", keyGen.ExponentMin)
	v.SetDefault("keygen.exponent_max", keyGen.ExponentMax)
	v.SetDefault("keygen.max_exponent_attempts", keyGen.MaxExponentAttempts)
	v.SetDefault("keygen.block_size", keyGen.BlockSize)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "rsa-keys.db")
	v.SetDefault("database.name", "")
}
