package main

import (
	"fmt"
	"os"

	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/mailbox"
	"github.com/emurenMRz/emailparser/internal/message"
	"golang.org/x/sync/errgroup"
)

type mboxResult struct {
	Index  int             `json:"index"`
	Result *extract.Result `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Run executes the mbox command.
func (c *MboxCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.File, err)
	}
	defer f.Close()

	messages, err := mailbox.ReadMessages(f)
	if err != nil {
		return err
	}
	deps.Logger.Info("read mailbox", "file", c.File, "messages", len(messages))

	results := make([]mboxResult, len(messages))
	decoder := message.NewDecoder()

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for i, msg := range messages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.parseOne(deps, decoder, i, msg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, results)
	}
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "=== Message %d ===\n", r.Index)
		if r.Error != "" {
			fmt.Fprintf(deps.Stdout, "error: %s\n\n", r.Error)
			continue
		}
		if err := writeRows(deps.Stdout, r.Result); err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

// parseOne never fails the batch: per-message problems are reported in
// the result.
func (c *MboxCmd) parseOne(deps *Dependencies, decoder *message.Decoder, i int, msg string) mboxResult {
	text := msg
	if !c.Raw {
		decoded, err := decoder.Decode(msg)
		if err != nil {
			deps.Logger.Warn("falling back to raw message", "index", i, "error", err)
		} else {
			text = decoded
		}
	}

	result, err := extract.Parse(text)
	if err != nil {
		return mboxResult{Index: i, Error: extract.ErrorMessage(err)}
	}
	return mboxResult{Index: i, Result: result}
}
