package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// writeArchive extracts a txtar archive's files under dir and returns the
// path to wantEntry. One archive models one workspace of virtual source
// files, per SPEC_FULL.md §A.4.
func writeArchive(t *testing.T, archive string, wantEntry string) string {
	t.Helper()
	dir := t.TempDir()
	ar := txtar.Parse([]byte(archive))
	for _, f := range ar.Files {
		path := filepath.Join(dir, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
	return filepath.Join(dir, wantEntry)
}

func TestRunSucceedsOnCrossFileImport(t *testing.T) {
	entry := writeArchive(t, `
-- shapes.orx --
struct Pair[A, B]:
    first: A
    second: B

def make_pair(x: int, y: int) -> Pair[int, int]:
    return Pair[int, int](x, y)
-- main.orx --
from shapes import make_pair

def entry() -> int:
    p = make_pair(1, 2)
    return p.first
`, "main.orx")

	code := run(entry)
	assert.Equal(t, 0, code)
}

func TestRunReportsUnresolvedImport(t *testing.T) {
	entry := writeArchive(t, `
-- main.orx --
from nowhere import something

def entry() -> int:
    return something
`, "main.orx")

	code := run(entry)
	assert.Equal(t, 1, code)
}

func TestRunReportsTypeMismatch(t *testing.T) {
	entry := writeArchive(t, `
-- main.orx --
def entry() -> int:
    return
`, "main.orx")

	code := run(entry)
	assert.Equal(t, 1, code)
}
