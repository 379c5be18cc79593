package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dandi-labs/dandi-dashboard/internal/config"
	"github.com/dandi-labs/dandi-dashboard/internal/database"
	"github.com/dandi-labs/dandi-dashboard/internal/database/repository"
	"github.com/dandi-labs/dandi-dashboard/internal/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Cmd is the dandi admin command
var Cmd = &cobra.Command{
	Use:           "dandi",
	Short:         "Dandi dashboard admin CLI",
	Long:          "Manage and validate Dandi API keys directly against the dashboard database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	Cmd.AddCommand(newKeysCmd(openRepository))
}

// repositoryOpener connects to storage for a command invocation. The returned
// close func releases the connection.
type repositoryOpener func(ctx context.Context) (*repository.APIKeyRepository, func(), error)

func openRepository(_ context.Context) (*repository.APIKeyRepository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	utils.ConfigureLogging(cfg.LogLevel, cfg.LogFormat)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewAPIKeyRepository(db), func() { database.Close(db) }, nil
}

// openerForDB returns a repositoryOpener bound to an existing connection
func openerForDB(db *gorm.DB) repositoryOpener {
	return func(context.Context) (*repository.APIKeyRepository, func(), error) {
		return repository.NewAPIKeyRepository(db), func() {}, nil
	}
}

// withRepository opens storage for one command run and releases it when fn
// returns, on success or failure
func withRepository(open repositoryOpener, fn func(cmd *cobra.Command, args []string, repo *repository.APIKeyRepository) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		repo, closeFn, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()
		return fn(cmd, args, repo)
	}
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
