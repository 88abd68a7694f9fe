package history

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/emurenMRz/emailparser/internal/extract"
	"github.com/google/uuid"
)

// Entry is a saved parse.
type Entry struct {
	ID          string          `json:"id"`
	ContentHash string          `json:"contentHash"`
	Source      string          `json:"source"`
	Result      *extract.Result `json:"result"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Store is the set of history operations the CLI and server depend on.
type Store interface {
	Save(ctx context.Context, source, text string, result *extract.Result) (*Entry, error)
	Find(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context, limit int) ([]*Entry, error)
	Delete(ctx context.Context, id string) error
}

var _ Store = (*Service)(nil)

// Service implements Store on SQLite.
type Service struct {
	db  *DB
	now func() time.Time
}

// NewService creates a new Service.
func NewService(db *DB) *Service {
	return &Service{db: db, now: time.Now}
}

// HashContent returns the hex xxHash of text.
func HashContent(text string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(text))
	return hex.EncodeToString(b)
}

// Save records result for text. Text that was saved before returns the
// earlier entry unchanged.
func (s *Service) Save(ctx context.Context, source, text string, result *extract.Result) (*Entry, error) {
	if result == nil {
		return nil, extract.Errorf(extract.EINVALID, "result required")
	}

	hash := HashContent(text)
	if e, err := s.findBy(ctx, "content_hash", hash); err == nil {
		return e, nil
	} else if extract.ErrorCode(err) != extract.ENOTFOUND {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	e := &Entry{
		ID:          uuid.New().String(),
		ContentHash: hash,
		Source:      source,
		Result:      result,
		CreatedAt:   s.now().UTC().Truncate(time.Second),
	}

	_, err = s.db.db.ExecContext(ctx, `
		INSERT INTO entries (id, content_hash, source, result, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID, e.ContentHash, e.Source, string(payload), e.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	return e, nil
}

// Find returns the entry with the given ID.
func (s *Service) Find(ctx context.Context, id string) (*Entry, error) {
	return s.findBy(ctx, "id", id)
}

func (s *Service) findBy(ctx context.Context, column, value string) (*Entry, error) {
	row := s.db.db.QueryRowContext(ctx, `
		SELECT id, content_hash, source, result, created_at
		FROM entries
		WHERE `+column+` = ?
	`, value)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, extract.Errorf(extract.ENOTFOUND, "history entry not found")
	}
	return e, err
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns all entries.
func (s *Service) List(ctx context.Context, limit int) ([]*Entry, error) {
	query := `SELECT id, content_hash, source, result, created_at FROM entries ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the entry with the given ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	res, err := s.db.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return extract.Errorf(extract.ENOTFOUND, "history entry not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var (
		e         Entry
		payload   string
		createdAt string
	)
	if err := s.Scan(&e.ID, &e.ContentHash, &e.Source, &payload, &createdAt); err != nil {
		return nil, err
	}

	e.Result = &extract.Result{}
	if err := json.Unmarshal([]byte(payload), e.Result); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &e, nil
}
