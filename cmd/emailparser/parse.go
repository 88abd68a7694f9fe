package main

import (
	"fmt"
	"io"
	"os"

	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/message"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	text, err := c.readInput(deps.Stdin)
	if err != nil {
		return err
	}

	raw := text
	if c.Decode {
		d := message.NewDecoder()
		d.PreferHTML = c.HTML
		if text, err = d.Decode(text); err != nil {
			return err
		}
	}

	result, err := extract.Parse(text)
	if err != nil {
		return err
	}
	deps.Logger.Debug("parsed email", "source", c.source(), "type", result.Type)

	if c.Save {
		entry, err := deps.History.Save(deps.Ctx, c.source(), raw, result)
		if err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "saved %s\n", entry.ID)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, result)
	}
	return writeRows(deps.Stdout, result)
}

func (c *ParseCmd) readInput(stdin io.Reader) (string, error) {
	if c.File == "-" {
		return message.ReadText(stdin, c.Charset)
	}

	f, err := os.Open(c.File)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", c.File, err)
	}
	defer f.Close()

	return message.ReadText(f, c.Charset)
}

func (c *ParseCmd) source() string {
	if c.File == "-" {
		return "stdin"
	}
	return c.File
}
