package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-password-vault/internal/workers"
	"github.com/MKhiriev/go-password-vault/models"
)

func (a *App) newTOTPCommand() *cobra.Command {
	var (
		watch    bool
		duration time.Duration
		copyCode bool
	)

	cmd := &cobra.Command{
		Use:   "totp <collection/.../vault>",
		Short: "Print the current one-time code of a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			content, err := a.decrypt(ctx, args[0])
			if err != nil {
				return err
			}

			code, err := a.services.VaultService.GenerateCode(ctx, content)
			if err != nil {
				return err
			}
			if copyCode {
				if err = a.clipboard.WriteAll(code.Code); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			if !watch {
				fmt.Fprintln(out, formatCode(code))
				return nil
			}

			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			source := func(ctx context.Context) (models.OneTimeCode, error) {
				return a.services.VaultService.GenerateCode(ctx, content)
			}
			if isTerminal(out) {
				return a.watchInteractive(ctx, args[0], code, source)
			}

			ticker := workers.NewCodeTicker(source, a.cfg.Workers.TickInterval, func(c models.OneTimeCode) {
				fmt.Fprintln(out, formatCode(c))
			})
			workers.NewWorkers(ticker).Run(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep refreshing the code until interrupted")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Stop watching after this long (0 means until interrupted)")
	cmd.Flags().BoolVar(&copyCode, "copy", false, "Copy the current code to the clipboard")
	return cmd
}

func formatCode(c models.OneTimeCode) string {
	return fmt.Sprintf("%s  %s", titleStyle.Render(c.Code), helpStyle.Render(fmt.Sprintf("%2ds left", c.Remaining)))
}

// watchInteractive runs the countdown screen next to the code ticker until
// the user quits or ctx ends.
func (a *App) watchInteractive(ctx context.Context, path string, first models.OneTimeCode, source workers.CodeSource) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newWatchModel(path, first, a.clipboard),
		tea.WithContext(ctx),
		tea.WithInput(a.in),
		tea.WithOutput(a.out),
		tea.WithAltScreen(),
	)
	ui := &programWorker{program: program, done: cancel}
	ticker := workers.NewCodeTicker(source, a.cfg.Workers.TickInterval, func(c models.OneTimeCode) {
		program.Send(codeMsg(c))
	})

	workers.NewWorkers(ui, ticker).Run(ctx)
	return ui.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
