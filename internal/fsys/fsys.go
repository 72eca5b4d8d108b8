package fsys

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the filesystem surface the scaffolder needs. Production code
// uses the OS filesystem; tests swap in an afero.MemMapFs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS wraps an afero filesystem as an FS.
func NewAferoFS(afs afero.Fs) FS {
	return &aferoFS{fs: afs}
}

// NewOSFS returns an FS backed by the real filesystem.
func NewOSFS() FS {
	return &aferoFS{fs: afero.NewOsFs()}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	out := make([]fs.DirEntry, 0, len(entries))
	for _, info := range entries {
		out = append(out, fs.FileInfoToDirEntry(info))
	}
	return out, nil
}

// Exists reports whether name exists as a regular file.
func Exists(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && !info.IsDir()
}

// CopyDir recursively copies src into dst. A missing src is not an
// error: there is simply nothing to copy.
func CopyDir(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrInvalid}
	}
	return copyDirRecursive(fsys, src, dst)
}

func copyDirRecursive(fsys FS, src, dst string) error {
	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(dst, 0o755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDirRecursive(fsys, srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		data, err := fsys.ReadFile(srcPath)
		if err != nil {
			return err
		}
		if err := fsys.WriteFile(dstPath, data, 0o644); err != nil {
			return err
		}
	}

	return nil
}
