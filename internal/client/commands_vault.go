package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-password-vault/internal/envelope"
	"github.com/MKhiriev/go-password-vault/internal/passgen"
	"github.com/MKhiriev/go-password-vault/models"
)

const (
	copyPassword = "password"
	copyLogin    = "login"
	copyTOTP     = "totp"
)

func (a *App) newPutCommand() *cobra.Command {
	var (
		login     string
		totp      string
		extra     map[string]string
		algorithm string
		generate  bool
		length    int
	)

	cmd := &cobra.Command{
		Use:   "put <collection/.../vault>",
		Short: "Create or replace a vault",
		Long: `put encrypts a new vault, creating missing collections on the way.
An existing vault with the same path is replaced entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, name, err := splitVaultPath(args[0])
			if err != nil {
				return err
			}
			alg, err := parseAlgorithmFlag(algorithm)
			if err != nil {
				return err
			}

			content := models.VaultContent{}
			if cmd.Flags().Changed("login") {
				content.Login = models.StringPtr(login)
			}
			if totp != "" {
				content.TOTPSecret = models.StringPtr(totp)
			}
			if len(extra) > 0 {
				content.ExtraData = extra
			}

			if generate {
				opts := passgen.DefaultOptions()
				opts.Length = length
				pw, err := passgen.Generate(opts)
				if err != nil {
					return err
				}
				content.Password = &pw
			} else {
				pw, err := a.passwords.ReadPassword(promptEntry)
				if err != nil {
					return err
				}
				if pw != "" {
					content.Password = &pw
				}
			}

			master, err := a.readMasterPassword()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			tree, err := a.services.VaultService.LoadRoot(ctx)
			if err != nil {
				return err
			}
			parent, err := a.ensureCollections(ctx, tree, dir)
			if err != nil {
				return err
			}
			if _, err = a.services.VaultService.SaveVault(ctx, tree, parent, name, content, alg, master); err != nil {
				return err
			}

			if alg == "" {
				alg = models.AlgorithmType(a.cfg.App.DefaultAlgorithm)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", args[0], alg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&login, "login", "l", "", "Login or e-mail")
	cmd.Flags().StringVar(&totp, "totp", "", "Base32 TOTP secret")
	cmd.Flags().StringToStringVarP(&extra, "extra", "e", nil, "Extra key=value data (repeatable)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Cipher (defaults to the configured one)")
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "Store a generated password instead of prompting")
	cmd.Flags().IntVar(&length, "length", passgen.DefaultLength, "Length of a generated password")
	return cmd
}

func (a *App) newGetCommand() *cobra.Command {
	var (
		showPassword bool
		copyName     string
	)

	cmd := &cobra.Command{
		Use:   "get <collection/.../vault>",
		Short: "Decrypt and show a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			content, err := a.decrypt(ctx, args[0])
			if err != nil {
				return err
			}

			var code *models.OneTimeCode
			if content.HasTOTP() {
				if c, err := a.services.VaultService.GenerateCode(ctx, content); err == nil {
					code = &c
				}
			}

			if copyName != "" {
				if err = a.copyField(ctx, content, copyName); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to clipboard\n", copyName)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderContent(args[0], content, showPassword, code))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showPassword, "show-password", "s", false, "Print the password instead of masking it")
	cmd.Flags().StringVar(&copyName, "copy", "", "Copy a field to the clipboard (password, login, totp)")
	return cmd
}

func (a *App) newRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <collection/.../vault>",
		Short: "Delete a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.services.VaultService.LoadRoot(cmd.Context())
			if err != nil {
				return err
			}
			id, err := resolveVault(tree, args[0])
			if err != nil {
				return err
			}
			if _, err = a.services.VaultService.DeleteVault(cmd.Context(), tree, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

// decrypt resolves path before asking for the master password, so a typo
// fails without a prompt.
func (a *App) decrypt(ctx context.Context, path string) (models.VaultContent, error) {
	tree, err := a.services.VaultService.LoadRoot(ctx)
	if err != nil {
		return models.VaultContent{}, err
	}
	id, err := resolveVault(tree, path)
	if err != nil {
		return models.VaultContent{}, err
	}

	master, err := a.readMasterPassword()
	if err != nil {
		return models.VaultContent{}, err
	}
	return a.services.VaultService.DecryptVault(ctx, tree, id, master)
}

func (a *App) copyField(ctx context.Context, content models.VaultContent, field string) error {
	var value string
	switch field {
	case copyPassword:
		value = valueOr(content.Password)
	case copyLogin:
		value = valueOr(content.Login)
	case copyTOTP:
		code, err := a.services.VaultService.GenerateCode(ctx, content)
		if err != nil {
			return err
		}
		value = code.Code
	default:
		return fmt.Errorf("unknown field %q for --copy (use %s, %s or %s)", field, copyPassword, copyLogin, copyTOTP)
	}

	if value == noValue {
		return fmt.Errorf("vault has no %s", field)
	}
	if err := a.clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// parseAlgorithmFlag returns "" for an empty flag so the configured default
// applies.
func parseAlgorithmFlag(name string) (models.AlgorithmType, error) {
	if name == "" {
		return "", nil
	}
	alg, err := models.ParseAlgorithm(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", envelope.ErrUnsupportedAlgorithm, err)
	}
	return alg, nil
}
