package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"TradeSentinel/internal/model"
)

// reasonSeparator joins rationale strings into a single TEXT column.
// Newlines never appear inside a single rationale.
const reasonSeparator = "\n"

// SQLiteStore persists candles and signals to a SQLite database. The
// duplicate-insert check rides on the UNIQUE constraint, so concurrent
// ingestion of overlapping backfills cannot produce duplicate rows.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for concurrent reads while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, log: logger.With().Str("component", "store").Logger()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.log.Info().Str("path", dbPath).Msg("sqlite store opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS candles (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			source    TEXT NOT NULL,
			pair      TEXT NOT NULL,
			timeframe TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			open      REAL NOT NULL,
			high      REAL NOT NULL,
			low       REAL NOT NULL,
			close     REAL NOT NULL,
			volume    REAL NOT NULL,
			UNIQUE(source, pair, timeframe, timestamp)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_pair_tf_ts ON candles(pair, timeframe, timestamp)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			pair       TEXT NOT NULL,
			timeframe  TEXT NOT NULL,
			timestamp  INTEGER NOT NULL,
			action     TEXT NOT NULL,
			score      INTEGER NOT NULL,
			reasons    TEXT,
			last_price REAL,
			UNIQUE(pair, timeframe, timestamp)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_pair_tf_ts ON signals(pair, timeframe, timestamp)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// InsertCandles inserts candles, silently ignoring rows whose identity key
// (source, pair, timeframe, timestamp) already exists. Returns the number
// of rows actually inserted.
func (s *SQLiteStore) InsertCandles(rows []model.Candle) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO candles
		(source, pair, timeframe, timestamp, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, c := range rows {
		res, err := stmt.Exec(c.Source, c.Pair, c.Timeframe, c.Timestamp,
			c.Open, c.High, c.Low, c.Close, c.Volume)
		if err != nil {
			return 0, fmt.Errorf("insert candle ts=%d: %w", c.Timestamp, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	s.log.Debug().Int("inserted", inserted).Int("offered", len(rows)).Msg("candles stored")
	return inserted, nil
}

// LoadCandles returns all candles for a pair/timeframe, ascending by
// timestamp.
func (s *SQLiteStore) LoadCandles(pair, timeframe string) ([]model.Candle, error) {
	rows, err := s.db.Query(`SELECT source, pair, timeframe, timestamp, open, high, low, close, volume
		FROM candles WHERE pair = ? AND timeframe = ? ORDER BY timestamp ASC`, pair, timeframe)
	if err != nil {
		return nil, fmt.Errorf("query candles: %w", err)
	}
	defer rows.Close()

	var out []model.Candle
	for rows.Next() {
		var c model.Candle
		if err := rows.Scan(&c.Source, &c.Pair, &c.Timeframe, &c.Timestamp,
			&c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, fmt.Errorf("scan candle: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SaveSignal upserts the signal for its (pair, timeframe, timestamp) key:
// the latest recomputation wins, unlike candles.
func (s *SQLiteStore) SaveSignal(sig *model.Signal) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO signals
		(pair, timeframe, timestamp, action, score, reasons, last_price)
		VALUES (?,?,?,?,?,?,?)`,
		sig.Pair, sig.Timeframe, sig.Timestamp, string(sig.Action), sig.Score,
		strings.Join(sig.Reasons, reasonSeparator), sig.LastPrice)
	if err != nil {
		return fmt.Errorf("save signal: %w", err)
	}
	return nil
}

// LatestSignal returns the most recent stored signal for a pair/timeframe,
// or nil when none exists.
func (s *SQLiteStore) LatestSignal(pair, timeframe string) (*model.Signal, error) {
	row := s.db.QueryRow(`SELECT pair, timeframe, timestamp, action, score, reasons, last_price
		FROM signals WHERE pair = ? AND timeframe = ? ORDER BY timestamp DESC LIMIT 1`, pair, timeframe)

	var sig model.Signal
	var action, reasons string
	err := row.Scan(&sig.Pair, &sig.Timeframe, &sig.Timestamp, &action, &sig.Score, &reasons, &sig.LastPrice)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest signal: %w", err)
	}
	sig.Action = model.Action(action)
	if reasons != "" {
		sig.Reasons = strings.Split(reasons, reasonSeparator)
	}
	return &sig, nil
}

func (s *SQLiteStore) Close() error {
	s.log.Info().Msg("closing sqlite store")
	return s.db.Close()
}
