package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-password-vault/internal/passgen"
	"github.com/MKhiriev/go-password-vault/models"
)

func (a *App) newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, alg := range models.AllAlgorithms() {
				marker := " "
				if string(alg) == a.cfg.App.DefaultAlgorithm {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, alg)
			}
			return nil
		},
	}
}

func (a *App) newGenPassCommand() *cobra.Command {
	var (
		opts      = passgen.DefaultOptions()
		noUpper   bool
		noLower   bool
		noDigits  bool
		noSpecial bool
		copyPass  bool
	)

	cmd := &cobra.Command{
		Use:         "genpass",
		Short:       "Generate a random password",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoVault: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Upper, opts.Lower, opts.Digits, opts.Special = !noUpper, !noLower, !noDigits, !noSpecial

			pw, err := passgen.Generate(opts)
			if err != nil {
				return err
			}

			if copyPass {
				if err = a.clipboard.WriteAll(pw); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Copied password to clipboard")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "n", passgen.DefaultLength, "Password length")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "Exclude upper-case letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "Exclude lower-case letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	cmd.Flags().BoolVar(&noSpecial, "no-special", false, "Exclude special characters")
	cmd.Flags().BoolVar(&copyPass, "copy", false, "Copy the password instead of printing it")
	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoVault: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.info.String())
		},
	}
}
