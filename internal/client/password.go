package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// PasswordEnv, when set, supplies the master password for scripting.
const PasswordEnv = "VAULT_PASSWORD"

const (
	promptMaster = "Master password: "
	promptEntry  = "Password to store (empty for none): "
)

var errEmptyMasterPassword = errors.New("master password must not be empty")

type terminalPasswordReader struct {
	in     io.Reader
	prompt io.Writer
	lines  *bufio.Reader
}

func newTerminalPasswordReader(in io.Reader, prompt io.Writer) *terminalPasswordReader {
	return &terminalPasswordReader{in: in, prompt: prompt, lines: bufio.NewReader(in)}
}

// ReadPassword reads without echo when in is a terminal and reads one line
// otherwise. The master password prompt is answered from [PasswordEnv] when
// it is set.
func (r *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	if prompt == promptMaster {
		if pw, ok := os.LookupEnv(PasswordEnv); ok {
			return pw, nil
		}
	}

	fmt.Fprint(r.prompt, prompt)

	if f, ok := r.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(r.prompt)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readMasterPassword asks for the master password and rejects an empty one.
func (a *App) readMasterPassword() (string, error) {
	pw, err := a.passwords.ReadPassword(promptMaster)
	if err != nil {
		return "", err
	}
	if pw == "" {
		return "", errEmptyMasterPassword
	}
	return pw, nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
