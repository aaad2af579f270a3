package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-password-vault/internal/app"
	"github.com/MKhiriev/go-password-vault/internal/config"
	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/MKhiriev/go-password-vault/internal/service"
	"github.com/MKhiriev/go-password-vault/models"
)

const (
	loggerRole = "go-password-vault"

	// annotationNoVault marks commands that run without configuration or
	// storage.
	annotationNoVault = "no-vault"
)

type App struct {
	info      models.AppBuildInfo
	root      *cobra.Command
	flags     *config.StructuredConfig
	passwords PasswordReader
	clipboard Clipboard

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg      *config.StructuredConfig
	services *service.Services
	logger   *logger.Logger
}

type Option func(*App)

func WithPasswordReader(r PasswordReader) Option {
	return func(a *App) { a.passwords = r }
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

// WithIO replaces the standard streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in, a.out, a.errOut = in, out, errOut
	}
}

func NewApp(info models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		info:      info,
		clipboard: systemClipboard{},
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.passwords == nil {
		a.passwords = newTerminalPasswordReader(a.in, a.errOut)
	}

	a.root = a.newRootCommand()
	return a
}

// Run executes args and prints a user-facing message for any error.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)

	err := a.root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("command failed")
		fmt.Fprintf(a.errOut, "Error: %s\n", userMessage(err))
	}

	if closeErr := a.logger.Close(); closeErr != nil {
		fmt.Fprintf(a.errOut, "close log file: %v\n", closeErr)
	}
	a.logger = logger.Nop()
	return err
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "vault",
		Short: "A local password vault with per-file encryption",
		Long: `vault keeps credentials in a directory tree: every collection is a
directory and every vault is one encrypted .crypto file. Nothing leaves the
machine and the master password is never stored.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		a.newListCommand(),
		a.newMkdirCommand(),
		a.newPutCommand(),
		a.newGetCommand(),
		a.newRmCommand(),
		a.newRmdirCommand(),
		a.newTOTPCommand(),
		a.newAlgorithmsCommand(),
		a.newGenPassCommand(),
		a.newVersionCommand(),
	)
	return root
}

// setup loads the configuration and wires the services for every command
// that touches the vault.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationNoVault] != "" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewClientLogger(loggerRole, cfg.App.LogDir).WithLevel(cfg.App.LogLevel)

	services, err := service.NewServices(cfg, log)
	if err != nil {
		return fmt.Errorf("create services: %w", err)
	}

	a.cfg, a.services, a.logger = cfg, services, log
	cmd.SetContext(log.WithContext(cmd.Context()))
	return nil
}

// userMessage prefers the domain message and falls back to the error text
// for driver errors such as unknown commands or flags.
func userMessage(err error) string {
	if msg := app.MessageFor(err); msg != app.MsgInternalError {
		return msg
	}
	return err.Error()
}
