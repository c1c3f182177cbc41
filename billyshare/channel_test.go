package billyshare

import (
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/smbshare/smb"
)

func TestConnectUnknownShare(t *testing.T) {
	c := New()
	_, err := c.Connect("nope")
	assert.ErrorIs(t, err, smb.ErrConnectionFailed)
}

func TestConnectRegisteredShare(t *testing.T) {
	c := New()
	c.AddMemShare("public")

	tree, err := c.Connect("public")
	require.NoError(t, err)
	require.NoError(t, tree.Close())
}

func TestOpenCreateWriteStat(t *testing.T) {
	c := New()
	c.AddMemShare("public")
	tree, err := c.Connect("public")
	require.NoError(t, err)

	f, err := tree.Open("hello.txt", smb.AccessCreate)
	require.NoError(t, err)

	n, err := f.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, f.Close())

	fi, err := tree.Stat("hello.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), fi.Size)
	assert.False(t, fi.Dir)
}

func TestOpenExistingDoesNotTruncate(t *testing.T) {
	c := New()
	fs := c.AddMemShare("public")
	require.NoError(t, util.WriteFile(fs, "part.bin", []byte("abcdef"), 0o644))

	tree, err := c.Connect("public")
	require.NoError(t, err)

	f, err := tree.Open("part.bin", smb.AccessWrite)
	require.NoError(t, err)

	pos, err := f.Seek(6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), pos)

	_, err = f.Write([]byte("ghi"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	fi, err := tree.Stat("part.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(9), fi.Size)
}

func TestOpenExistingMissing(t *testing.T) {
	c := New()
	c.AddMemShare("public")
	tree, err := c.Connect("public")
	require.NoError(t, err)

	_, err = tree.Open("absent.bin", smb.AccessWrite)
	assert.ErrorIs(t, err, smb.ErrNotFound)
}

func TestStatMissing(t *testing.T) {
	c := New()
	c.AddMemShare("public")
	tree, err := c.Connect("public")
	require.NoError(t, err)

	_, err = tree.Stat("absent.bin")
	assert.ErrorIs(t, err, smb.ErrNotFound)
}

func TestMoveReplacesTarget(t *testing.T) {
	c := New()
	fs := c.AddMemShare("public")
	require.NoError(t, util.WriteFile(fs, "new.tmp", []byte("fresh"), 0o644))
	require.NoError(t, util.WriteFile(fs, "final.txt", []byte("stale"), 0o644))

	tree, err := c.Connect("public")
	require.NoError(t, err)
	require.NoError(t, tree.Move("new.tmp", "final.txt"))

	f, err := fs.Open("final.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))

	_, err = tree.Stat("new.tmp")
	assert.ErrorIs(t, err, smb.ErrNotFound)
}

func TestDelete(t *testing.T) {
	c := New()
	fs := c.AddMemShare("public")
	require.NoError(t, util.WriteFile(fs, "gone.bin", []byte("x"), 0o644))

	tree, err := c.Connect("public")
	require.NoError(t, err)
	require.NoError(t, tree.Delete("gone.bin"))

	_, err = tree.Stat("gone.bin")
	assert.ErrorIs(t, err, smb.ErrNotFound)

	err = tree.Delete("gone.bin")
	assert.ErrorIs(t, err, smb.ErrNotFound)
}

func TestNestedPaths(t *testing.T) {
	c := New()
	c.AddMemShare("public")
	tree, err := c.Connect("public")
	require.NoError(t, err)

	f, err := tree.Open("reports/2026/q3.pdf", smb.AccessCreate)
	require.NoError(t, err)
	_, err = f.Write([]byte("pdf"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	fi, err := tree.Stat("reports/2026/q3.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(3), fi.Size)
}
