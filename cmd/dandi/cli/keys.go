package cli

import (
	"context"
	"fmt"

	"github.com/dandi-labs/dandi-dashboard/internal/database/repository"
	"github.com/dandi-labs/dandi-dashboard/internal/models"
	"github.com/dandi-labs/dandi-dashboard/internal/services/api_key"

	"github.com/spf13/cobra"
)

// createdIDRecorder captures the ID carried by the created event. Create
// returns only an error, so the event is where the new ID comes from.
type createdIDRecorder struct {
	id string
}

func (r *createdIDRecorder) Publish(_ context.Context, event models.APIKeyEvent) {
	if event.Type == models.APIKeyCreated {
		r.id = event.APIKeyID
	}
}

func newKeysCmd(open repositoryOpener) *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all API keys with masked secrets",
		Args:  cobra.NoArgs,
		RunE: withRepository(open, func(cmd *cobra.Command, args []string, repo *repository.APIKeyRepository) error {
			service := api_key.NewService(repo, nil)
			keys, err := service.FetchAll(cmd.Context())
			if err != nil {
				return err
			}

			if len(keys) == 0 {
				fmt.Fprintln(out(cmd), "No API keys found")
				return nil
			}

			w := out(cmd)
			fmt.Fprintf(w, "%-36s  %-24s  %-5s  %-35s  %-8s  %-10s\n", "ID", "NAME", "TYPE", "KEY", "USAGE", "CREATED")
			fmt.Fprintf(w, "%-36s  %-24s  %-5s  %-35s  %-8s  %-10s\n", "--", "----", "----", "---", "-----", "-------")
			for _, k := range keys {
				fmt.Fprintf(w, "%-36s  %-24s  %-5s  %-35s  %-8d  %-10s\n", k.ID, k.Name, k.Type, api_key.MaskAPIKey(k.Key), k.Usage, k.CreatedAt)
			}
			return nil
		}),
	}

	var (
		name  string
		kind  string
		limit int
		pii   bool
	)
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new API key and print its secret",
		Args:  cobra.NoArgs,
		RunE: withRepository(open, func(cmd *cobra.Command, args []string, repo *repository.APIKeyRepository) error {
			form := models.APIKeyFormData{
				Name:            name,
				Type:            models.APIKeyType(kind),
				PIIRestrictions: pii,
			}
			if cmd.Flags().Changed("limit") {
				form.LimitMonthlyUsage = true
				form.MonthlyUsageLimit = &limit
			}

			recorder := &createdIDRecorder{}
			service := api_key.NewService(repo, recorder)
			if err := service.Create(cmd.Context(), form); err != nil {
				return err
			}

			created, err := service.Get(cmd.Context(), recorder.id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "API key created: %s\n", created.Key)
			fmt.Fprintf(out(cmd), "ID: %s\n", created.ID)
			return nil
		}),
	}
	createCmd.Flags().StringVar(&name, "name", "", "Display name of the key")
	createCmd.Flags().StringVar(&kind, "type", string(models.APIKeyTypeDev), "Key type (dev or prod)")
	createCmd.Flags().IntVar(&limit, "limit", 0, "Monthly usage limit; enables limiting when set")
	createCmd.Flags().BoolVar(&pii, "pii", false, "Enable PII restrictions")

	revealCmd := &cobra.Command{
		Use:   "reveal <id>",
		Short: "Print the full secret of an API key",
		Args:  cobra.ExactArgs(1),
		RunE: withRepository(open, func(cmd *cobra.Command, args []string, repo *repository.APIKeyRepository) error {
			service := api_key.NewService(repo, nil)
			key, err := service.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), key.Key)
			return nil
		}),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete an API key",
		Args:  cobra.ExactArgs(1),
		RunE: withRepository(open, func(cmd *cobra.Command, args []string, repo *repository.APIKeyRepository) error {
			service := api_key.NewService(repo, nil)
			if err := service.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "API key deleted: %s\n", args[0])
			return nil
		}),
	}

	validateCmd := &cobra.Command{
		Use:   "validate <key>",
		Short: "Check whether an API key exists",
		Args:  cobra.ExactArgs(1),
		RunE: withRepository(open, func(cmd *cobra.Command, args []string, repo *repository.APIKeyRepository) error {
			validator := api_key.NewValidationService(repo)
			result := validator.Check(cmd.Context(), args[0])
			switch result.Outcome {
			case api_key.OutcomeValid:
				fmt.Fprintln(out(cmd), "API key is valid")
				return nil
			case api_key.OutcomeError:
				return fmt.Errorf("error validating API key: %w", result.Err)
			default:
				return fmt.Errorf("invalid API key")
			}
		}),
	}

	keysCmd.AddCommand(listCmd, createCmd, revealCmd, deleteCmd, validateCmd)
	return keysCmd
}
