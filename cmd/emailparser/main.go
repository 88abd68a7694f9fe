package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/history"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		stop()
		os.Exit(1)
	}
}

// errorText renders application errors by their user-facing message.
func errorText(err error) string {
	switch {
	case errors.Is(err, extract.ErrEmptyInput):
		return extract.EmptyInputTitle + ": " + extract.EmptyInputMessage
	case extract.ErrorCode(err) != extract.EINTERNAL:
		return extract.ErrorMessage(err)
	}
	return err.Error()
}

// Main represents the program.
type Main struct {
	// Database path used when no --db flag is given.
	DBPath string

	// SQLite database backing History. Opened on demand.
	DB *history.DB

	// History may be set before Run to bypass the database in tests.
	History history.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("emailparser"),
		kong.Description("Extract subject, sender, links, codes and more from raw email text."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'emailparser --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogLevel)

	command := kongCtx.Command()
	needsHistory := strings.HasPrefix(command, "history") ||
		(strings.HasPrefix(command, "parse") && cli.Parse.Save) ||
		(command == "serve" && cli.Serve.History)

	if needsHistory {
		if m.History == nil {
			path := cli.DB
			if path == "" {
				path = m.DBPath
			}
			m.DB = history.NewDB(path)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set EMAILPARSER_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", path, err)
			}
			defer m.Close()
			m.History = history.NewService(m.DB)
		}
		deps.History = m.History
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func defaultDBPath() string {
	if path := os.Getenv("EMAILPARSER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "emailparser.db"
	}
	dir := filepath.Join(home, ".emailparser")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history.db")
}
