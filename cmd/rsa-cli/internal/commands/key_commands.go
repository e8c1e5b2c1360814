package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/nolanchancellor/RSAImplementation/internal/app"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
	"github.com/nolanchancellor/RSAImplementation/internal/infrastructure/persistence"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// KeyCommandHandler encapsulates logic for managing key pairs and their registry via CLI.
type KeyCommandHandler struct {
	keyService keys.KeyService
	db         *gorm.DB
	logger     logger.Logger
}

func newKeyCommandHandler(cmd *cobra.Command) (*KeyCommandHandler, error) {
	stack, err := setupCryptoStack(cmd)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(stack.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open key registry: %w", err)
	}

	keyRepo, err := persistence.NewGormKeyRepository(db, stack.logger)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	keyService, err := app.NewKeyService(stack.keyGenerator, stack.rsaProcessor, keyRepo, stack.logger)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	return &KeyCommandHandler{
		keyService: keyService,
		db:         db,
		logger:     stack.logger,
	}, nil
}

func (handler *KeyCommandHandler) close() {
	if err := persistence.CloseDB(handler.db); err != nil {
		handler.logger.Warn("Failed to close key registry: ", err)
	}
}

// GenerateKeysCmd generates a key pair and persists its records in the selected directory
func GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keyDir, err := requiredString(cmd, "key-dir")
	if err != nil {
		return err
	}

	handler, err := newKeyCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.close()

	pair, err := handler.keyService.Generate(cmd.Context(), keyDir)
	if err != nil {
		handler.logger.Error(err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), pair.KeyPairID)
	fmt.Fprintln(cmd.OutOrStdout(), pair.Public.FilePath)
	fmt.Fprintln(cmd.OutOrStdout(), pair.Private.FilePath)
	return nil
}

// ListKeysCmd prints the registered key records
func ListKeysCmd(cmd *cobra.Command, _ []string) error {
	keyType, err := cmd.Flags().GetString("type")
	if err != nil {
		return fmt.Errorf("invalid type flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}
	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		return fmt.Errorf("invalid offset flag: %w", err)
	}

	handler, err := newKeyCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.close()

	query := keys.NewKeyQuery()
	query.Type = keyType
	query.Limit = limit
	query.Offset = offset

	metas, err := handler.keyService.List(cmd.Context(), query)
	if err != nil {
		handler.logger.Error(err)
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY PAIR ID\tTYPE\tDIGITS\tEXPONENT\tCREATED\tPATH")
	for _, meta := range metas {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			meta.KeyPairID, meta.Type, meta.ModulusDigits, meta.Exponent,
			meta.DateTimeCreated.Format(time.RFC3339), meta.FilePath)
	}
	return w.Flush()
}

// DeleteKeysCmd removes the records of a key pair and their registry entries
func DeleteKeysCmd(cmd *cobra.Command, _ []string) error {
	keyPairID, err := requiredString(cmd, "key-pair-id")
	if err != nil {
		return err
	}

	handler, err := newKeyCommandHandler(cmd)
	if err != nil {
		return err
	}
	defer handler.close()

	if err := handler.keyService.Delete(cmd.Context(), keyPairID); err != nil {
		handler.logger.Error(err)
		return err
	}

	return nil
}

// InitKeyCommands registers the generate-keys, list-keys and delete-keys commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		RunE:  GenerateKeysCmd,
	}
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the key records")
	rootCmd.AddCommand(generateKeysCmd)

	var listKeysCmd = &cobra.Command{
		Use:   "list-keys",
		Short: "List registered key records",
		RunE:  ListKeysCmd,
	}
	listKeysCmd.Flags().StringP("type", "", "", "Only list public or private key records")
	listKeysCmd.Flags().IntP("limit", "", 50, "Maximum number of records to list")
	listKeysCmd.Flags().IntP("offset", "", 0, "Number of records to skip")
	rootCmd.AddCommand(listKeysCmd)

	var deleteKeysCmd = &cobra.Command{
		Use:   "delete-keys",
		Short: "Delete the records of a key pair",
		RunE:  DeleteKeysCmd,
	}
	deleteKeysCmd.Flags().StringP("key-pair-id", "", "", "ID of the key pair to delete")
	rootCmd.AddCommand(deleteKeysCmd)

	return nil
}
