// Package mock provides function-field fakes of the application's
// interfaces for tests.
package mock

import (
	"context"

	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/emurenMRz/emailparser/internal/history"
)

var _ history.Store = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of history.Store.
type HistoryStore struct {
	SaveFn   func(ctx context.Context, source, text string, result *extract.Result) (*history.Entry, error)
	FindFn   func(ctx context.Context, id string) (*history.Entry, error)
	ListFn   func(ctx context.Context, limit int) ([]*history.Entry, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (s *HistoryStore) Save(ctx context.Context, source, text string, result *extract.Result) (*history.Entry, error) {
	return s.SaveFn(ctx, source, text, result)
}

func (s *HistoryStore) Find(ctx context.Context, id string) (*history.Entry, error) {
	return s.FindFn(ctx, id)
}

func (s *HistoryStore) List(ctx context.Context, limit int) ([]*history.Entry, error) {
	return s.ListFn(ctx, limit)
}

func (s *HistoryStore) Delete(ctx context.Context, id string) error {
	return s.DeleteFn(ctx, id)
}
