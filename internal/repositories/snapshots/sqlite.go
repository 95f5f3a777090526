package snapshots

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vadim010975/retro-tactics/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	game_id  TEXT PRIMARY KEY,
	data     TEXT NOT NULL,
	saved_at INTEGER NOT NULL
)`

// SQLiteRepository persists saved games in a SQLite file
type SQLiteRepository struct {
	sqlDB *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens the store at path and creates its table when missing
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}
	if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "create snapshots table")
	}
	return &SQLiteRepository{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *SQLiteRepository) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save upserts the snapshot of a game
func (s *SQLiteRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	data, err := encode(input.Snapshot)
	if err != nil {
		return nil, err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO snapshots (game_id, data, saved_at) VALUES (?, ?, ?)
ON CONFLICT(game_id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		input.GameID,
		string(data),
		toMillis(input.Snapshot.SavedAt),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot for game %s", input.GameID)
	}

	return &SaveOutput{Success: true}, nil
}

// Get loads the snapshot of a game
func (s *SQLiteRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGameID(input.GameID); err != nil {
		return nil, err
	}

	var (
		data    string
		savedAt int64
	)
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT data, saved_at FROM snapshots WHERE game_id = ?`, input.GameID)
	if err := row.Scan(&data, &savedAt); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, notFound(input.GameID)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot for game %s", input.GameID)
	}

	snap, err := decode(input.GameID, []byte(data))
	if err != nil {
		return nil, err
	}
	snap.SavedAt = fromMillis(savedAt)

	return &GetOutput{Snapshot: snap}, nil
}

// Delete removes the snapshot of a game
func (s *SQLiteRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGameID(input.GameID); err != nil {
		return nil, err
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM snapshots WHERE game_id = ?`, input.GameID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete snapshot for game %s", input.GameID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count deleted rows")
	}
	if n == 0 {
		return nil, notFound(input.GameID)
	}

	return &DeleteOutput{Success: true}, nil
}
