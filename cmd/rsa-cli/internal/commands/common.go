package commands

import (
	"fmt"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/infrastructure/cryptography"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/config"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// ConfigFlag is the persistent flag holding the configuration file path
const ConfigFlag = "config"

func loadConfig(cmd *cobra.Command) (*config.CLIConfig, error) {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", ConfigFlag, err)
	}

	return config.InitializeCLIConfig(path)
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// cryptoStack is what every command needs: configuration, logger, key generator and processor.
type cryptoStack struct {
	cfg          *config.CLIConfig
	logger       logger.Logger
	keyGenerator crypto.KeyGenerator
	rsaProcessor crypto.RSAProcessor
}

func setupCryptoStack(cmd *cobra.Command) (*cryptoStack, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	keyGenerator, err := cryptography.NewKeyGeneratorFromSettings(&cfg.KeyGen, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(cfg.KeyGen.BlockSize, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &cryptoStack{
		cfg:          cfg,
		logger:       loggerInstance,
		keyGenerator: keyGenerator,
		rsaProcessor: rsaProcessor,
	}, nil
}

func requiredString(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("flag --%s is required", name)
	}
	return value, nil
}
