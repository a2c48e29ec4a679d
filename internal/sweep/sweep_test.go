package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLearner struct {
	categories []string
	contents   []string
}

func (r *recordingLearner) Learn(category, content string) {
	r.categories = append(r.categories, category)
	r.contents = append(r.contents, content)
}

func newTestSweeper(t *testing.T) (*Sweeper, string, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "in")
	processed := filepath.Join(dir, "in", "processed")

	ledger, err := OpenLedger(filepath.Join(dir, "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	return New(input, processed, ledger), input, processed
}

func drop(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunLearnsAndMoves(t *testing.T) {
	sw, input, processed := newTestSweeper(t)
	drop(t, input, "engine.txt", "IGBT driver uses TC4420CPA\n")
	drop(t, input, "empty.txt", "   \n")

	var l recordingLearner
	res, err := sw.Run(&l)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Learned)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 2, res.Moved)

	require.Len(t, l.categories, 1)
	assert.Equal(t, "engine", l.categories[0])
	assert.Equal(t, "IGBT driver uses TC4420CPA", l.contents[0], "file body is trimmed")

	assert.FileExists(t, filepath.Join(processed, "engine.txt"))
	assert.FileExists(t, filepath.Join(processed, "empty.txt"))
	assert.NoFileExists(t, filepath.Join(input, "engine.txt"))
}

func TestRunSkipsAlreadyIngestedContent(t *testing.T) {
	sw, input, _ := newTestSweeper(t)
	drop(t, input, "engine.txt", "same content")

	var l recordingLearner
	_, err := sw.Run(&l)
	require.NoError(t, err)
	require.Len(t, l.contents, 1)

	// Re-drop the identical content under a new name.
	drop(t, input, "engine-copy.txt", "same content")
	res, err := sw.Run(&l)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Learned)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Moved)
	assert.Len(t, l.contents, 1, "identical content is not re-learned")
}

func TestRunLearnsChangedContent(t *testing.T) {
	sw, input, _ := newTestSweeper(t)
	drop(t, input, "engine.txt", "v1")

	var l recordingLearner
	_, err := sw.Run(&l)
	require.NoError(t, err)

	drop(t, input, "engine.txt", "v2")
	res, err := sw.Run(&l)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Learned)
	assert.Equal(t, []string{"v1", "v2"}, l.contents)
}

func TestRunIgnoresNonTxtFiles(t *testing.T) {
	sw, input, _ := newTestSweeper(t)
	drop(t, input, "notes.md", "not swept")

	var l recordingLearner
	res, err := sw.Run(&l)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Learned)
	assert.Equal(t, 0, res.Moved)
	assert.FileExists(t, filepath.Join(input, "notes.md"))
}

func TestRunWithoutLedger(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in")
	sw := New(input, filepath.Join(input, "processed"), nil)
	drop(t, input, "a.txt", "alpha")

	var l recordingLearner
	res, err := sw.Run(&l)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Learned)
}

func TestLedger(t *testing.T) {
	ledger, err := OpenLedger(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer ledger.Close()

	h := hashContent("alpha")
	seen, err := ledger.Seen(h)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, ledger.Mark(h, "a.txt"))
	seen, err = ledger.Seen(h)
	require.NoError(t, err)
	assert.True(t, seen)

	// Marking the same content again is harmless.
	require.NoError(t, ledger.Mark(h, "b.txt"))
	n, err := ledger.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
