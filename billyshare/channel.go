// Package billyshare implements the smb channel surface on top of a
// go-billy filesystem, so a local directory (osfs) or an in-memory tree
// (memfs) can stand in for a mounted share.
package billyshare

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/smbshare/smb"
)

// Channel maps share names to billy filesystems. Connecting to a registered
// share yields a Tree rooted at that filesystem.
type Channel struct {
	mu     sync.RWMutex
	shares map[string]billy.Filesystem
}

// New creates an empty channel with no shares registered.
func New() *Channel {
	return &Channel{shares: make(map[string]billy.Filesystem)}
}

// AddShare registers fs under the given share name, replacing any previous
// registration.
func (c *Channel) AddShare(name string, fs billy.Filesystem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shares[name] = fs

	logrus.WithFields(logrus.Fields{
		"function": "AddShare",
		"share":    name,
	}).Debug("Share registered")
}

// AddMemShare registers a fresh in-memory filesystem under name and returns
// it. Intended for tests and demos.
func (c *Channel) AddMemShare(name string) billy.Filesystem {
	fs := memfs.New()
	c.AddShare(name, fs)
	return fs
}

// AddDirShare registers the local directory root as a share named name.
func (c *Channel) AddDirShare(name, root string) {
	c.AddShare(name, osfs.New(root))
}

// Connect implements smb.Channel.
func (c *Channel) Connect(share string) (smb.Tree, error) {
	c.mu.RLock()
	fs, ok := c.shares[share]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: unknown share %q", smb.ErrConnectionFailed, share)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Connect",
		"share":    share,
	}).Debug("Connected to share")

	return &tree{share: share, fs: fs}, nil
}

type tree struct {
	share string
	fs    billy.Filesystem
}

// Open implements smb.Tree.
func (t *tree) Open(path string, mode smb.AccessMode) (smb.File, error) {
	flag := os.O_RDWR
	switch mode {
	case smb.AccessCreate:
		flag |= os.O_CREATE | os.O_TRUNC
	case smb.AccessWrite:
		// Existing file only; resume must never truncate.
	}

	f, err := t.fs.OpenFile(path, flag, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", smb.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", smb.ErrOpenFailed, path, err)
	}
	return &file{f: f}, nil
}

// Stat implements smb.Tree.
func (t *tree) Stat(path string) (smb.FileInfo, error) {
	fi, err := t.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return smb.FileInfo{}, fmt.Errorf("%w: %s", smb.ErrNotFound, path)
		}
		return smb.FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return smb.FileInfo{Size: fi.Size(), Dir: fi.IsDir(), ModTime: fi.ModTime()}, nil
}

// Move implements smb.Tree with rename-with-replace semantics, which
// publish-by-rename relies on. Some billy backends refuse to rename onto an
// existing file, so the target is cleared first.
func (t *tree) Move(oldPath, newPath string) error {
	if _, err := t.fs.Stat(newPath); err == nil {
		_ = t.fs.Remove(newPath)
	}
	if err := t.fs.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("%w: %s -> %s: %v", smb.ErrMoveFailed, oldPath, newPath, err)
	}
	return nil
}

// Delete implements smb.Tree.
func (t *tree) Delete(path string) error {
	if err := t.fs.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", smb.ErrNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", smb.ErrDeleteFailed, path, err)
	}
	return nil
}

// Close implements smb.Tree. Nothing is held per connection.
func (t *tree) Close() error { return nil }

type file struct {
	f billy.File
}

// Seek implements smb.File.
func (f *file) Seek(offset int64) (int64, error) {
	pos, err := f.f.Seek(offset, io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("%w: offset %d: %v", smb.ErrSeekFailed, offset, err)
	}
	return pos, nil
}

// Write implements smb.File.
func (f *file) Write(p []byte) (int, error) {
	return f.f.Write(p)
}

// Close implements smb.File.
func (f *file) Close() error {
	return f.f.Close()
}
