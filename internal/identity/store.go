// Package identity keeps the per-installation client identifier that tags
// every authentication request sent from this machine.
//
// The identifier lives in the same file the vanilla launcher uses, so
// switching launchers does not invalidate session tokens the service has
// already issued for this installation. Persistence is best effort: when the
// file cannot be read or written, a fresh identifier is used for the current
// run and authentication carries on.
package identity

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/mcauth/internal/filex"
	"github.com/dmitrijs2005/mcauth/internal/logging"
	"github.com/google/uuid"
)

// Provider hands out the client identifier.
type Provider interface {
	LoadOrCreate(ctx context.Context) string
}

// newID is swapped in tests.
var newID = uuid.NewString

// Store is a file-backed Provider. It does no locking; one process is
// expected to touch the file at a time.
type Store struct {
	path   string
	logger logging.Logger
}

// NewStore returns a Store backed by the file at path. A nil logger
// discards everything.
func NewStore(path string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{path: path, logger: logger.With("path", path)}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// LoadOrCreate returns the identifier stored at the backing path, creating
// and persisting a new one if the file does not exist. It never fails: on any
// I/O problem it logs a warning and returns an identifier that is not
// persisted. An existing file is never rewritten.
func (s *Store) LoadOrCreate(ctx context.Context) string {
	id, err := filex.ReadFirstLine(s.path)
	switch {
	case err == nil && id != "":
		return id
	case err == nil:
		return s.degraded(ctx, errors.New("identity file is empty"))
	case !errors.Is(err, os.ErrNotExist):
		return s.degraded(ctx, err)
	}

	id = newID()
	if err := filex.EnsureParentDir(s.path); err != nil {
		s.warn(ctx, err)
		return id
	}
	if err := filex.WriteFileAtomic(s.path, []byte(id), 0o644); err != nil {
		s.warn(ctx, err)
		return id
	}

	s.logger.Info(ctx, "client identity created")
	return id
}

func (s *Store) degraded(ctx context.Context, err error) string {
	s.warn(ctx, err)
	return newID()
}

func (s *Store) warn(ctx context.Context, err error) {
	s.logger.Warn(ctx, "identity persistence degraded, using a temporary client identifier",
		"error", err)
}
