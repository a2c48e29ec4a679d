// Package sweep ingests text files dropped into an input folder.
//
// Each *.txt file becomes one staged fact: the category is the filename
// without its extension and the content is the trimmed file body. Files
// are moved to a processed subfolder after reading; that move is a
// courtesy to the user and is not atomic with the learn call.
package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Learner receives category/content pairs discovered by the sweep.
type Learner interface {
	Learn(category, content string)
}

// Result summarizes one sweep run.
type Result struct {
	Learned int `json:"learned"`
	Skipped int `json:"skipped"`
	Moved   int `json:"moved"`
}

// Sweeper scans an input directory and feeds file contents to a Learner.
type Sweeper struct {
	inputDir     string
	processedDir string
	ledger       *Ledger
}

// New creates a sweeper. The ledger is optional; without it every
// non-empty file is learned on every drop.
func New(inputDir, processedDir string, ledger *Ledger) *Sweeper {
	return &Sweeper{inputDir: inputDir, processedDir: processedDir, ledger: ledger}
}

// EnsureDirs creates the input and processed directories if missing.
func (s *Sweeper) EnsureDirs() error {
	if err := os.MkdirAll(s.inputDir, 0o755); err != nil {
		return fmt.Errorf("create input dir: %w", err)
	}
	if err := os.MkdirAll(s.processedDir, 0o755); err != nil {
		return fmt.Errorf("create processed dir: %w", err)
	}
	return nil
}

// Run scans the input directory once. Empty files and contents already
// recorded in the ledger are moved without learning. Per-file errors are
// logged and skipped; the sweep keeps going.
func (s *Sweeper) Run(l Learner) (Result, error) {
	if err := s.EnsureDirs(); err != nil {
		return Result{}, err
	}

	entries, err := os.ReadDir(s.inputDir)
	if err != nil {
		return Result{}, fmt.Errorf("scan input dir: %w", err)
	}

	var res Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		name := entry.Name()
		src := filepath.Join(s.inputDir, name)

		body, err := os.ReadFile(src)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("sweep read failed")
			continue
		}
		content := strings.TrimSpace(string(body))

		switch {
		case content == "":
			res.Skipped++
		case s.alreadySeen(content):
			log.Debug().Str("file", name).Msg("content already ingested, skipping")
			res.Skipped++
		default:
			category := strings.TrimSuffix(name, ".txt")
			l.Learn(category, content)
			s.mark(content, name)
			res.Learned++
		}

		if err := moveFile(src, filepath.Join(s.processedDir, name)); err != nil {
			log.Error().Err(err).Str("file", name).Msg("sweep move failed")
			continue
		}
		res.Moved++
	}

	return res, nil
}

func (s *Sweeper) alreadySeen(content string) bool {
	if s.ledger == nil {
		return false
	}
	seen, err := s.ledger.Seen(hashContent(content))
	if err != nil {
		log.Warn().Err(err).Msg("ledger lookup failed")
		return false
	}
	return seen
}

func (s *Sweeper) mark(content, name string) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.Mark(hashContent(content), name); err != nil {
		log.Warn().Err(err).Str("file", name).Msg("ledger mark failed")
	}
}

func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename can fail across filesystems; copy then remove.
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return err
	}
	return os.Remove(src)
}
