package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nolanchancellor/RSAImplementation/internal/app"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for encrypting and decrypting files via CLI.
type CipherCommandHandler struct {
	cipherService crypto.CipherService
	logger        logger.Logger
}

func newCipherCommandHandler(cmd *cobra.Command) (*CipherCommandHandler, error) {
	stack, err := setupCryptoStack(cmd)
	if err != nil {
		return nil, err
	}

	cipherService, err := app.NewCipherService(stack.keyGenerator, stack.rsaProcessor, stack.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &CipherCommandHandler{
		cipherService: cipherService,
		logger:        stack.logger,
	}, nil
}

// EncryptCmd encrypts a file with a public key record and writes the ciphertext record
func EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredString(cmd, "input-file")
	if err != nil {
		return err
	}
	outputFile, err := requiredString(cmd, "output-file")
	if err != nil {
		return err
	}
	publicKeyPath, err := requiredString(cmd, "public-key")
	if err != nil {
		return err
	}

	handler, err := newCipherCommandHandler(cmd)
	if err != nil {
		return err
	}

	if err := handler.cipherService.EncryptFile(cmd.Context(), inputFile, outputFile, publicKeyPath); err != nil {
		handler.logger.Error(err)
		return err
	}

	handler.logger.Info("Encrypted data path ", outputFile)
	return nil
}

// DecryptCmd decrypts a ciphertext record with a key pair and writes the plaintext
func DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := requiredString(cmd, "input-file")
	if err != nil {
		return err
	}
	outputFile, err := requiredString(cmd, "output-file")
	if err != nil {
		return err
	}
	publicKeyPath, err := requiredString(cmd, "public-key")
	if err != nil {
		return err
	}
	privateKeyPath, err := requiredString(cmd, "private-key")
	if err != nil {
		return err
	}

	handler, err := newCipherCommandHandler(cmd)
	if err != nil {
		return err
	}

	if err := handler.cipherService.DecryptFile(cmd.Context(), inputFile, outputFile, publicKeyPath, privateKeyPath); err != nil {
		handler.logger.Error(err)
		return err
	}

	handler.logger.Info("Decrypted data path ", outputFile)
	return nil
}

// RunPipelineCmd generates keys, encrypts the input file and decrypts it again inside a work directory
func RunPipelineCmd(cmd *cobra.Command, _ []string) error {
	workDir, err := requiredString(cmd, "work-dir")
	if err != nil {
		return err
	}
	inputFile, err := requiredString(cmd, "input-file")
	if err != nil {
		return err
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	handler, err := newCipherCommandHandler(cmd)
	if err != nil {
		return err
	}

	decrypted, err := handler.cipherService.RunPipeline(cmd.Context(), workDir, message)
	if err != nil {
		handler.logger.Error(err)
		return err
	}

	handler.logger.Info("Decrypted message path ", filepath.Join(workDir, crypto.DecryptedMessageFileName))
	fmt.Fprintln(cmd.OutOrStdout(), string(decrypted))
	return nil
}

// InitCipherCommands registers the encrypt, decrypt and run commands
func InitCipherCommands(rootCmd *cobra.Command) error {
	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a public key record",
		RunE:  EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to ciphertext output file")
	encryptCmd.Flags().StringP("public-key", "", "", "Path to public key record")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext record",
		RunE:  DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to ciphertext file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptCmd.Flags().StringP("public-key", "", "", "Path to public key record")
	decryptCmd.Flags().StringP("private-key", "", "", "Path to private key record")
	rootCmd.AddCommand(decryptCmd)

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Generate keys, encrypt and decrypt a message in one go",
		Long: `run writes public_key, private_key, ciphertext and decrypted_message into the work
directory and prints the decrypted message.`,
		RunE: RunPipelineCmd,
	}
	runCmd.Flags().StringP("work-dir", "", ".", "Directory receiving the key, ciphertext and decrypted message records")
	runCmd.Flags().StringP("input-file", "", "message", "Path to the message file")
	rootCmd.AddCommand(runCmd)

	return nil
}
