package main_test

import (
	"context"
	"testing"
	"time"

	main "github.com/emurenMRz/emailparser/cmd/emailparser"
	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/history"
	"github.com/emurenMRz/emailparser/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryListCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps("")
	deps.History = &mock.HistoryStore{
		ListFn: func(_ context.Context, limit int) ([]*history.Entry, error) {
			assert.Equal(t, 5, limit)
			return []*history.Entry{{
				ID:        "entry-1",
				Source:    "mail.eml",
				Result:    &extract.Result{Subject: "Invoice 42"},
				CreatedAt: time.Date(2025, 4, 29, 17, 0, 0, 0, time.UTC),
			}}, nil
		},
	}

	require.NoError(t, (&main.HistoryListCmd{Limit: 5}).Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "entry-1")
	assert.Contains(t, out, "mail.eml")
	assert.Contains(t, out, "Invoice 42")
	assert.Contains(t, out, "2025-04-29 17:00:00")
}

func TestHistoryShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints rows", func(t *testing.T) {
		t.Parallel()

		r, err := extract.Parse("Subject: Hi\r\n\r\nHello world")
		require.NoError(t, err)

		deps, stdout, _ := newDeps("")
		deps.History = &mock.HistoryStore{
			FindFn: func(_ context.Context, id string) (*history.Entry, error) {
				return &history.Entry{ID: id, Result: r}, nil
			},
		}

		require.NoError(t, (&main.HistoryShowCmd{ID: "abc"}).Run(deps))
		assert.Contains(t, stdout.String(), "id: abc\n")
		assert.Contains(t, stdout.String(), "subject: Hi\n")
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps("")
		deps.History = &mock.HistoryStore{
			FindFn: func(_ context.Context, _ string) (*history.Entry, error) {
				return nil, extract.Errorf(extract.ENOTFOUND, "history entry not found")
			},
		}

		err := (&main.HistoryShowCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, extract.ENOTFOUND, extract.ErrorCode(err))
	})
}

func TestHistoryDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	var deleted string
	deps, stdout, _ := newDeps("")
	deps.History = &mock.HistoryStore{
		DeleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	require.NoError(t, (&main.HistoryDeleteCmd{ID: "abc"}).Run(deps))
	assert.Equal(t, "abc", deleted)
	assert.Equal(t, "deleted abc\n", stdout.String())
}
