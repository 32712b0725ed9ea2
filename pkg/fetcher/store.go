package fetcher

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

const folderPerm = 0o755

// Store is the destination folder. Names are relative to it.
type Store struct {
	fs billy.Filesystem
}

func NewStore(folder string) *Store { return &Store{fs: osfs.New(folder)} }

// NewMemStore keeps the files in memory.
func NewMemStore() *Store { return &Store{fs: memfs.New()} }

// Prepare creates the folder with any missing parents. It is fine to call
// it on a folder that already exists.
func (s *Store) Prepare() error { return s.fs.MkdirAll(".", folderPerm) }

// Commit writes src to name, replacing whatever was there.
func (s *Store) Commit(name string, src io.Reader) (int64, error) {
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func (s *Store) Exists(name string) bool {
	_, err := s.fs.Stat(name)
	return err == nil
}
