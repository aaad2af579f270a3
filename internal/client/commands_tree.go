package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-password-vault/internal/service"
	"github.com/MKhiriev/go-password-vault/models"
)

func (a *App) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls [collection]",
		Aliases: []string{"list"},
		Short:   "Show the collections and vaults",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.services.VaultService.LoadRoot(cmd.Context())
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			id, err := resolveCollection(tree, path)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTree(tree, id))
			return nil
		},
	}
}

func (a *App) newMkdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <collection>",
		Short: "Create a collection and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := splitPath(args[0])
			if len(parts) == 0 {
				return fmt.Errorf("%w: collection path is empty", service.ErrInvalidName)
			}

			tree, err := a.services.VaultService.LoadRoot(cmd.Context())
			if err != nil {
				return err
			}
			if _, err = a.ensureCollections(cmd.Context(), tree, parts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created collection %s\n", args[0])
			return nil
		},
	}
}

func (a *App) newRmdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rmdir <collection>",
		Short: "Delete a collection with everything inside it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.services.VaultService.LoadRoot(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveCollection(tree, args[0])
			if err != nil {
				return err
			}
			if _, err = a.services.VaultService.DeleteCollection(cmd.Context(), tree, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted collection %s\n", args[0])
			return nil
		},
	}
}

// ensureCollections walks parts from the root, creating what is missing.
func (a *App) ensureCollections(ctx context.Context, tree *models.VaultTree, parts []string) (models.CollectionID, error) {
	cur := models.RootID
	for _, name := range parts {
		c, err := a.services.VaultService.CreateCollection(ctx, tree, cur, name)
		if err != nil {
			return 0, err
		}
		cur = c.ID
	}
	return cur, nil
}
