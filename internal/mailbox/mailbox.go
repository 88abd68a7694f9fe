// Package mailbox reads mbox files from a directory whose file names are
// IMAP modified UTF-7 encoded mailbox names.
package mailbox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/emersion/go-imap/utf7"
	"github.com/emersion/go-mbox"
	"github.com/emurenMRz/emailparser/internal/extract"
)

// Dir is a directory of mbox files.
type Dir struct {
	Path   string
	Logger *slog.Logger
}

// NewDir returns a Dir rooted at path.
func NewDir(path string, logger *slog.Logger) *Dir {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dir{Path: path, Logger: logger}
}

// List returns the decoded names of all mailboxes in the directory. Files
// whose names are not valid modified UTF-7 are skipped.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("read mailbox directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, err := utf7.Encoding.NewDecoder().String(entry.Name())
		if err != nil {
			d.Logger.Warn("skipping mailbox with undecodable name", "file", entry.Name(), "error", err)
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Open opens the mbox file for the named mailbox.
func (d *Dir) Open(name string) (*os.File, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, extract.Errorf(extract.EINVALID, "invalid mailbox name %q", name)
	}
	encoded, err := utf7.Encoding.NewEncoder().String(name)
	if err != nil {
		return nil, extract.Errorf(extract.EINVALID, "invalid mailbox name %q", name)
	}

	f, err := os.Open(filepath.Join(d.Path, encoded))
	if errors.Is(err, os.ErrNotExist) {
		return nil, extract.Errorf(extract.ENOTFOUND, "mailbox %q not found", name)
	} else if err != nil {
		return nil, fmt.Errorf("open mailbox %q: %w", name, err)
	}
	return f, nil
}

// Messages reads every message in the named mailbox.
func (d *Dir) Messages(name string) ([]string, error) {
	f, err := d.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadMessages(f)
}

// ReadMessages splits an mbox stream into raw messages. The envelope
// "From " line is not part of the returned text.
func ReadMessages(r io.Reader) ([]string, error) {
	var messages []string
	reader := mbox.NewReader(r)
	for {
		mr, err := reader.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			return messages, fmt.Errorf("read message %d: %w", len(messages), err)
		}
		b, err := io.ReadAll(mr)
		if err != nil {
			return messages, fmt.Errorf("read message %d: %w", len(messages), err)
		}
		messages = append(messages, string(b))
	}
	return messages, nil
}
