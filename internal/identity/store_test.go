package identity

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/mcauth/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewStore(path, logging.Setup("text", "debug", &buf)), &buf
}

func TestLoadOrCreate_CreatesFileAndParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".minecraft", "clientId.txt")
	s, _ := newTestStore(t, path)

	id := s.LoadOrCreate(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err, "generated id should be a UUID")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, id, string(b), "file holds the bare id without a newline")
}

func TestLoadOrCreate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientId.txt")
	s, _ := newTestStore(t, path)

	first := s.LoadOrCreate(context.Background())
	second := s.LoadOrCreate(context.Background())
	assert.Equal(t, first, second)

	other, _ := newTestStore(t, path)
	assert.Equal(t, first, other.LoadOrCreate(context.Background()), "a new store over the same file sees the same id")
}

func TestLoadOrCreate_ReadsExistingVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientId.txt")
	require.NoError(t, os.WriteFile(path, []byte("not-a-uuid-but-fine\nignored"), 0o600))
	s, _ := newTestStore(t, path)

	assert.Equal(t, "not-a-uuid-but-fine", s.LoadOrCreate(context.Background()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not-a-uuid-but-fine\nignored", string(b), "existing file is left untouched")
}

func TestLoadOrCreate_UnwritableFallsBack(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// The parent "directory" is a regular file, so it can be neither created nor written into.
	path := filepath.Join(blocker, "clientId.txt")
	s, logs := newTestStore(t, path)

	id := s.LoadOrCreate(context.Background())
	assert.NotEmpty(t, id)
	assert.Contains(t, logs.String(), "identity persistence degraded")

	again := s.LoadOrCreate(context.Background())
	assert.NotEqual(t, id, again, "non-persisted ids are not reused")
}

func TestLoadOrCreate_UnreadableFallsBack(t *testing.T) {
	// A directory at the file path cannot be read as a file.
	path := filepath.Join(t.TempDir(), "clientId.txt")
	require.NoError(t, os.Mkdir(path, 0o700))
	s, logs := newTestStore(t, path)

	id := s.LoadOrCreate(context.Background())
	assert.NotEmpty(t, id)
	assert.Contains(t, logs.String(), "identity persistence degraded")

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, fi.IsDir(), "nothing is overwritten")
}

func TestLoadOrCreate_EmptyFileNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientId.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	orig := newID
	t.Cleanup(func() { newID = orig })
	newID = func() string { return "fresh" }

	s, logs := newTestStore(t, path)
	assert.Equal(t, "fresh", s.LoadOrCreate(context.Background()))
	assert.Contains(t, logs.String(), "identity file is empty")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestStore_Path(t *testing.T) {
	s, _ := newTestStore(t, "/x/clientId.txt")
	assert.Equal(t, "/x/clientId.txt", s.Path())
}

func TestNewStore_NilLogger(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	s := NewStore(filepath.Join(blocker, "clientId.txt"), nil)

	id := s.LoadOrCreate(context.Background())

	_, err := uuid.Parse(id)
	assert.NoError(t, err, "degraded path still yields an id")
}
