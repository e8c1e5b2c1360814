// Package main is the entry point for the rsa-cli application.
// It initializes the root command and registers the key and cipher sub-commands,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nolanchancellor/RSAImplementation/cmd/rsa-cli/internal/commands"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA command-line tool",
		Long: `rsa-cli generates textbook RSA key pairs from 100 digit primes, encrypts and decrypts
files in 82 byte blocks and keeps a registry of generated key records.

Settings are read from the file given with --config and from RSA_ prefixed environment
variables, e.g. RSA_KEYGEN_PRIME_DIGITS or RSA_DATABASE_DSN.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(commands.ConfigFlag, "", "Path to a YAML configuration file")

	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}
	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
