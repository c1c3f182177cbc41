package smb

import (
	"errors"
	"path"
	"strings"

	"github.com/opd-ai/smbshare/limits"
)

// ErrDirectoryTraversal indicates an attempt to address files outside the share.
var ErrDirectoryTraversal = errors.New("path contains directory traversal")

// Path addresses a directory on a named share. The zero value addresses the
// root of an unnamed share and is only useful in tests.
type Path struct {
	// Share is the share (volume) name passed to Channel.Connect.
	Share string
	// Dir is the directory within the share, slash-separated, relative to
	// the share root.
	Dir string
}

// Join returns the share-relative path of name inside p.Dir.
func (p Path) Join(name string) string {
	if p.Dir == "" {
		return name
	}
	return path.Join(p.Dir, name)
}

// String renders the path in share/dir form for logging.
func (p Path) String() string {
	if p.Dir == "" {
		return p.Share
	}
	return p.Share + "/" + p.Dir
}

// Ref is a fully resolved remote file identity: share, directory, and name.
// A task resolves its Ref at most once per run and treats it as immutable.
type Ref struct {
	Share string
	Dir   string
	Name  string
}

// Path returns the share-relative path of the referenced file.
func (r Ref) Path() string {
	return Path{Share: r.Share, Dir: r.Dir}.Join(r.Name)
}

// String renders the full identity for logging.
func (r Ref) String() string {
	return r.Share + "/" + r.Path()
}

// ValidateName checks that a remote file name is non-empty, within length
// limits, and free of directory traversal or separator characters.
func ValidateName(name string) error {
	if err := limits.ValidateFileName(name); err != nil {
		return err
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrDirectoryTraversal
	}
	if name == "." || name == ".." {
		return ErrDirectoryTraversal
	}
	return nil
}

// ValidatePath checks that a share-relative directory path is safe from
// directory traversal. It returns the cleaned path or an error if the path
// escapes the share root.
func ValidatePath(p string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(p, `\`, "/"))
	if cleaned == "." {
		return "", nil
	}
	if strings.HasPrefix(cleaned, "/") {
		cleaned = strings.TrimPrefix(cleaned, "/")
	}
	for _, part := range strings.Split(cleaned, "/") {
		if part == ".." {
			return "", ErrDirectoryTraversal
		}
	}
	return cleaned, nil
}
