// Package store implements the durable document store for the brain.
//
// The document lives in a single JSON file with a sibling backup copy.
// Commits rotate the primary into the backup before overwriting it, so
// the backup always holds the last-known-good state. A primary that
// fails to parse is recovered from the backup, and if that is not
// possible the store falls back to the fixed bootstrap blueprint.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/adavids/minibrain/internal/model"
)

// LoadStatus reports which path Load took to produce a document.
type LoadStatus int

const (
	// LoadedPrimary means the primary file parsed cleanly.
	LoadedPrimary LoadStatus = iota
	// RecoveredBackup means the primary was corrupt and was replaced by
	// the backup copy.
	RecoveredBackup
	// Bootstrapped means no usable state existed and the blueprint
	// document was created and persisted.
	Bootstrapped
)

// String returns a short label for logs and warnings.
func (s LoadStatus) String() string {
	switch s {
	case LoadedPrimary:
		return "ok"
	case RecoveredBackup:
		return "recovered"
	case Bootstrapped:
		return "bootstrapped"
	default:
		return "unknown"
	}
}

// Store owns the primary/backup file pair on disk.
type Store struct {
	path       string
	backupPath string
}

// New creates a store over the given primary and backup file paths. No
// filesystem access happens until Load or Commit.
func New(path, backupPath string) *Store {
	return &Store{path: path, backupPath: backupPath}
}

// Path returns the primary file path.
func (s *Store) Path() string { return s.path }

// BackupPath returns the backup file path.
func (s *Store) BackupPath() string { return s.backupPath }

// Load reads the durable document. A missing primary bootstraps, a
// corrupt primary is recovered from the backup (copying the backup over
// the primary), and a corrupt or missing backup falls back to bootstrap.
// Only real I/O errors are returned; corruption is never fatal.
func (s *Store) Load() (model.Document, LoadStatus, error) {
	doc, err := readDocument(s.path)
	if err == nil {
		return doc, LoadedPrimary, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		doc, berr := s.Bootstrap()
		return doc, Bootstrapped, berr
	}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) && !isUnmarshalErr(err) {
		return model.Document{}, LoadedPrimary, fmt.Errorf("read brain file: %w", err)
	}

	log.Warn().Str("path", s.path).Msg("brain file corrupted, checking backup")
	if _, statErr := os.Stat(s.backupPath); statErr == nil {
		if copyErr := copyFile(s.backupPath, s.path); copyErr != nil {
			return model.Document{}, RecoveredBackup, fmt.Errorf("restore backup: %w", copyErr)
		}
		doc, rerr := readDocument(s.path)
		if rerr == nil {
			log.Info().Str("path", s.path).Msg("restored brain from backup")
			return doc, RecoveredBackup, nil
		}
		log.Warn().Str("path", s.backupPath).Msg("backup also unreadable, rebuilding brain")
	}

	doc, berr := s.Bootstrap()
	return doc, Bootstrapped, berr
}

// Bootstrap writes the fixed blueprint document as the new primary file
// and returns it. The result is deterministic across runs.
func (s *Store) Bootstrap() (model.Document, error) {
	doc := model.DefaultDocument()
	if err := writeDocument(s.path, doc); err != nil {
		return doc, fmt.Errorf("create brain file: %w", err)
	}
	log.Info().Str("owner", doc.MasterInfo.Name).Str("path", s.path).Msg("first time setup, brain created")
	return doc, nil
}

// Commit persists the document. The current primary is copied to the
// backup path first (skipped when no primary exists yet), so the backup
// always reflects the previous successful commit, never the in-flight
// write.
func (s *Store) Commit(doc model.Document) error {
	if _, err := os.Stat(s.path); err == nil {
		if err := copyFile(s.path, s.backupPath); err != nil {
			return fmt.Errorf("backup brain file: %w", err)
		}
	}
	if err := writeDocument(s.path, doc); err != nil {
		return fmt.Errorf("write brain file: %w", err)
	}
	return nil
}

func readDocument(path string) (model.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, err
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return model.Document{}, err
	}
	if doc.LongTermMemory == nil {
		doc.LongTermMemory = map[string][]model.Fact{}
	}
	return doc, nil
}

func writeDocument(path string, doc model.Document) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func isUnmarshalErr(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
