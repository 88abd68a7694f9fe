package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/emurenMRz/emailparser/internal/history"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	History history.Store
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   kong.ConfigFlag `help:"Load flag defaults from a JSON file"`
	DB       string          `name:"db" env:"EMAILPARSER_DB" help:"History database path"`
	LogLevel string          `name:"log-level" env:"EMAILPARSER_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`

	Parse   ParseCmd   `cmd:"" help:"Extract fields from an email file or stdin"`
	Mbox    MboxCmd    `cmd:"" help:"Extract fields from every message in an mbox file"`
	Lint    LintCmd    `cmd:"" help:"Check required headers of a message or mbox"`
	Serve   ServeCmd   `cmd:"" help:"Serve the HTTP API"`
	History HistoryCmd `cmd:"" help:"Inspect saved results"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File    string `arg:"" optional:"" default:"-" help:"Email file (.txt or .eml), - for stdin"`
	Charset string `help:"Input charset, as an IANA name"`
	Decode  bool   `short:"d" help:"Decode MIME encodings before extracting"`
	HTML    bool   `help:"With --decode, read the HTML part as Markdown"`
	JSON    bool   `short:"j" name:"json" help:"Print the result as JSON"`
	Save    bool   `short:"s" help:"Save the result to history"`
}

// MboxCmd is the "mbox" subcommand.
type MboxCmd struct {
	File        string `arg:"" help:"mbox file"`
	Concurrency int    `short:"c" default:"4" help:"Messages parsed in parallel"`
	Raw         bool   `help:"Skip MIME decoding"`
	JSON        bool   `short:"j" name:"json" help:"Print results as JSON"`
}

// LintCmd is the "lint" subcommand.
type LintCmd struct {
	File string `arg:"" help:"Message or mbox file"`
	Mbox bool   `short:"m" help:"Treat the file as an mbox"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string  `default:":8080" env:"EMAILPARSER_ADDR" help:"Listen address"`
	Mailboxes string  `env:"EMAILPARSER_MAILBOXES" help:"Directory of mbox files to expose"`
	History   bool    `help:"Enable the history API"`
	Rate      float64 `default:"20" help:"Requests per second across all clients, 0 for unlimited"`
	Burst     int     `default:"40" help:"Request burst size"`
	MaxBody   int64   `default:"5242880" help:"Maximum request body in bytes"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" help:"List saved results"`
	Show   HistoryShowCmd   `cmd:"" help:"Show a saved result"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a saved result"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum entries, 0 for all"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID   string `arg:"" help:"Entry ID"`
	JSON bool   `short:"j" name:"json" help:"Print the entry as JSON"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID string `arg:"" help:"Entry ID"`
}
