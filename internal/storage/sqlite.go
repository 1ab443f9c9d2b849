// Package storage provides SQLite-based persistence for player
// progression. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
//
// Progression fields are stored as a key-value table of JSON strings;
// each field is written independently right after its owning mutation.
// Writes can be issued fire-and-forget: the simulation never blocks on
// persistence, and a failed write is logged, not retried.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db     *sql.DB
	logger *log.Logger

	mu     sync.Mutex
	writes chan kvWrite
	done   chan struct{}
	closed bool
}

type kvWrite struct {
	key   string
	value string
}

// RunRecord is one finished run, kept for history and stats.
type RunRecord struct {
	ID        int64
	RunID     string
	Player    string
	ScoreSecs int
	Coins     int
	Skin      string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows one writer at a time. A single pooled connection
	// serializes the async writer goroutine and synchronous run inserts
	// instead of letting them collide with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if logger == nil {
		logger = log.New(os.Stderr)
	}

	store := &Store{
		db:     db,
		logger: logger,
		writes: make(chan kvWrite, 64),
		done:   make(chan struct{}),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	go store.writeLoop()

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			score_secs INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			skin TEXT NOT NULL DEFAULT 'classic',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(player, score_secs DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// writeLoop applies queued async writes until Close drains the queue.
func (s *Store) writeLoop() {
	for w := range s.writes {
		if err := s.Set(w.key, w.value); err != nil {
			s.logger.Warn("async write failed", "key", w.key, "error", err)
		}
	}
	close(s.done)
}

// Close drains pending async writes and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.writes)
	}
	s.mu.Unlock()

	<-s.done

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Set writes one field synchronously.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set %s: %w", key, err)
	}
	return nil
}

// SetAsync queues a field write without blocking the caller. If the
// queue is full the write is dropped and logged; the acceptable loss
// window is the most recent unsaved increment.
func (s *Store) SetAsync(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.writes <- kvWrite{key: key, value: value}:
	default:
		s.logger.Warn("write queue full, dropping write", "key", key)
	}
}

// Get reads one field. The second return is false when the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot get %s: %w", key, err)
	}
	return value, true, nil
}

// LoadAll reads every stored field. Called once at startup.
func (s *Store) LoadAll() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM kv")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load fields: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		fields[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return fields, nil
}

// SaveRun records a finished run. Returns the ID of the inserted row.
func (s *Store) SaveRun(rec RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, player, score_secs, coins, skin)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.RunID, rec.Player, rec.ScoreSecs, rec.Coins, rec.Skin,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs ordered by survival time descending.
// An empty player matches every player.
func (s *Store) TopRuns(player string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, player, score_secs, coins, skin, created_at
		 FROM runs
		 WHERE ? = '' OR player = ?
		 ORDER BY score_secs DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Player, &r.ScoreSecs, &r.Coins, &r.Skin, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// PlayerBests summarizes one player's records across the run history:
// best survival time and best coin haul, each with the timestamp and
// skin of the run that set it.
type PlayerBests struct {
	Player        string
	BestTimeSecs  int
	BestTimeAt    time.Time
	BestTimeSkin  string
	BestCoins     int
	BestCoinsAt   time.Time
	BestCoinsSkin string
}

// AllBests folds the full run history into per-player records, in
// order of each player's first recorded run. The runs table is
// append-only, so records derived here survive regardless of which
// session wrote last.
func (s *Store) AllBests() ([]PlayerBests, error) {
	rows, err := s.db.Query(
		`SELECT player, score_secs, coins, skin, created_at
		 FROM runs
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run history: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	var bests []PlayerBests
	for rows.Next() {
		var (
			player, skin     string
			scoreSecs, coins int
			createdAt        any
		)
		if err := rows.Scan(&player, &scoreSecs, &coins, &skin, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		at := parseTimestamp(createdAt)

		i, ok := index[player]
		if !ok {
			i = len(bests)
			index[player] = i
			bests = append(bests, PlayerBests{Player: player})
		}
		b := &bests[i]
		if scoreSecs > b.BestTimeSecs || b.BestTimeAt.IsZero() {
			b.BestTimeSecs = scoreSecs
			b.BestTimeAt = at
			b.BestTimeSkin = skin
		}
		if coins > b.BestCoins || b.BestCoinsAt.IsZero() {
			b.BestCoins = coins
			b.BestCoinsAt = at
			b.BestCoinsSkin = skin
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return bests, nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
