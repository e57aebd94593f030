// Package store keeps a history of every tool run in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"eatfood"
	eatfoodmsgpack "eatfood/msgpack"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("run not found")

type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Run is one row of the history, without its snapshot.
type Run struct {
	ID        string
	Kind      string
	Label     string
	CreatedAt time.Time
	Value     float64 // total cost for shopping, kcal otherwise
}

func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	s := &Store{db: db, logger: logger}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("history store opened", zap.String("path", path))
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			label TEXT,
			created_at INTEGER NOT NULL,
			value REAL,
			snapshot BLOB
		);`,
		`CREATE INDEX IF NOT EXISTS runs_kind_created ON runs (kind, created_at);`,
	}
	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init history schema: %w", err)
		}
	}
	return nil
}

func (s *Store) insert(ctx context.Context, run Run, snapshot any) error {
	blob, err := eatfoodmsgpack.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", run.Kind, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, kind, label, created_at, value, snapshot) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Kind, run.Label, run.CreatedAt.UnixMilli(), run.Value, blob)
	if err != nil {
		return fmt.Errorf("insert %s run: %w", run.Kind, err)
	}
	s.logger.Debug("run stored",
		zap.String("id", run.ID),
		zap.String("kind", run.Kind),
		zap.Int("bytes", len(blob)))
	return nil
}

func (s *Store) SaveShopping(ctx context.Context, res *eatfood.ShoppingResult) error {
	run := eatfoodmsgpack.NewShoppingRun(res)
	label := fmt.Sprintf("%d recipes, %d items", len(res.Recipes), len(res.Items))
	return s.insert(ctx, Run{
		ID:        res.ID,
		Kind:      eatfoodmsgpack.KindShopping,
		Label:     label,
		CreatedAt: res.CreatedAt,
		Value:     res.TotalCost,
	}, &run)
}

// SaveMeal stores a meal and returns the generated run ID.
func (s *Store) SaveMeal(ctx context.Context, name string, at time.Time, res *eatfood.MealResult) (string, error) {
	id := uuid.New().String()
	rec := eatfoodmsgpack.NewMealRecord(id, at, name, res)
	return id, s.insert(ctx, Run{
		ID:        id,
		Kind:      eatfoodmsgpack.KindMeal,
		Label:     name,
		CreatedAt: at,
		Value:     res.Total.Calories,
	}, &rec)
}

func (s *Store) SaveDay(ctx context.Context, at time.Time, rep *eatfood.DayReport) (string, error) {
	id := uuid.New().String()
	rec := eatfoodmsgpack.NewDayRecord(id, at, rep)
	return id, s.insert(ctx, Run{
		ID:        id,
		Kind:      eatfoodmsgpack.KindDay,
		Label:     fmt.Sprintf("%d meals, score %d", len(rep.Meals), rep.Score),
		CreatedAt: at,
		Value:     rep.Total.Calories,
	}, &rec)
}

// List returns the newest runs first. An empty kind lists every kind; a
// limit of 0 or less means no limit.
func (s *Store) List(ctx context.Context, kind string, limit int) ([]Run, error) {
	q := `SELECT id, kind, label, created_at, value FROM runs`
	var args []any
	if kind != "" {
		q += ` WHERE kind = ?`
		args = append(args, kind)
	}
	q += ` ORDER BY created_at DESC, id`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var label sql.NullString
		var createdMs int64
		if err := rows.Scan(&r.ID, &r.Kind, &label, &createdMs, &r.Value); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Label = label.String
		r.CreatedAt = time.UnixMilli(createdMs)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *Store) snapshot(ctx context.Context, kind, id string, v any) error {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM runs WHERE id = ? AND kind = ?`, id, kind).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("load %s %s: %w", kind, id, err)
	}
	if err := eatfoodmsgpack.Unmarshal(blob, v); err != nil {
		return fmt.Errorf("decode %s %s: %w", kind, id, err)
	}
	return nil
}

func (s *Store) LoadShopping(ctx context.Context, id string) (*eatfood.ShoppingResult, error) {
	var run eatfoodmsgpack.ShoppingRun
	if err := s.snapshot(ctx, eatfoodmsgpack.KindShopping, id, &run); err != nil {
		return nil, err
	}
	return eatfoodmsgpack.ToShoppingResult(&run), nil
}

func (s *Store) LoadMeal(ctx context.Context, id string) (*eatfoodmsgpack.MealRecord, error) {
	var rec eatfoodmsgpack.MealRecord
	if err := s.snapshot(ctx, eatfoodmsgpack.KindMeal, id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) LoadDay(ctx context.Context, id string) (*eatfoodmsgpack.DayRecord, error) {
	var rec eatfoodmsgpack.DayRecord
	if err := s.snapshot(ctx, eatfoodmsgpack.KindDay, id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Export writes every run, oldest first, as a stream of framed records and
// returns how many were written.
func (s *Store) Export(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, created_at, snapshot FROM runs ORDER BY created_at, id`)
	if err != nil {
		return 0, fmt.Errorf("export runs: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var rec eatfoodmsgpack.Record
		if err := rows.Scan(&rec.UUID, &rec.Kind, &rec.CreatedAtMs, &rec.Payload); err != nil {
			return n, fmt.Errorf("scan run: %w", err)
		}
		if err := eatfoodmsgpack.WriteRecord(w, &rec); err != nil {
			return n, fmt.Errorf("write record %s: %w", rec.UUID, err)
		}
		n++
	}
	return n, rows.Err()
}
