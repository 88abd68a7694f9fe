package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	main "github.com/emurenMRz/emailparser/cmd/emailparser"
	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/history"
	"github.com/emurenMRz/emailparser/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints rows for stdin", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"parse"},
			strings.NewReader("Subject: Hi\r\n\r\nHello world"), stdout, stderr)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "subject: Hi\nfrom: Not found\n"))
		assert.Contains(t, stdout.String(), "body: Hello world\n")
	})

	t.Run("shows help without error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"--help"}, nil, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "parse")
		assert.Contains(t, stdout.String(), "history")
	})

	t.Run("fails without command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		err := m.Run(context.Background(), nil, nil, &bytes.Buffer{}, &bytes.Buffer{})

		assert.Error(t, err)
	})

	t.Run("uses injected history for save", func(t *testing.T) {
		t.Parallel()

		var saved string
		m := main.NewMain()
		m.History = &mock.HistoryStore{
			SaveFn: func(_ context.Context, source, text string, result *extract.Result) (*history.Entry, error) {
				saved = source
				return &history.Entry{ID: "e-1", Result: result}, nil
			},
		}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"parse", "--save"},
			strings.NewReader("Hello Max\n"), &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Equal(t, "stdin", saved)
		assert.Contains(t, stderr.String(), "saved e-1")
	})

	t.Run("opens database for history commands", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{DBPath: ":memory:"}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"history", "list"}, nil, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "No saved results.\n", stdout.String())
	})
}
