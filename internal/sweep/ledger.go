package sweep

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Ledger tracks which file contents have already been ingested, so a
// file re-dropped with identical content is skipped instead of staged
// again. Keyed by content hash, not filename.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens or creates the ledger database at the given path.
func OpenLedger(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS processed_files (
		hash         TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		processed_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_processed_name ON processed_files(name);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Seen reports whether content with this hash was already ingested.
func (l *Ledger) Seen(hash string) (bool, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM processed_files WHERE hash = ?`, hash).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Mark records an ingested file's content hash and name.
func (l *Ledger) Mark(hash, name string) error {
	_, err := l.db.Exec(
		`INSERT OR IGNORE INTO processed_files (hash, name, processed_at) VALUES (?, ?, ?)`,
		hash, name, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Count returns the number of ledger entries.
func (l *Ledger) Count() (int, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM processed_files`).Scan(&n)
	return n, err
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// hashContent returns the hex SHA-256 of file content.
func hashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
