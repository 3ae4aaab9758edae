// Package filesystem is the on-disk implementation of domain.FileSystemAdapter.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// Adapter forwards to the os package. WriteFile is atomic.
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) ReadFile(path string) ([]byte, error)          { return os.ReadFile(path) }
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }
func (a *Adapter) Stat(path string) (os.FileInfo, error)        { return os.Stat(path) }
func (a *Adapter) UserHomeDir() (string, error)                 { return os.UserHomeDir() }

// WriteFile writes data to a temporary file beside path and renames it into
// place, so readers never see a half-written config.
func (a *Adapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
