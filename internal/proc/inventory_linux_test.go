//go:build linux

package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProcess creates <root>/<pid>/fd with one symlink per target and an
// optional comm file.
func fakeProcess(t *testing.T, root string, pid int, comm string, targets ...string) {
	t.Helper()
	dir := filepath.Join(root, strconv.Itoa(pid))
	fdDir := filepath.Join(dir, "fd")
	require.NoError(t, os.MkdirAll(fdDir, 0o755))
	for i, target := range targets {
		require.NoError(t, os.Symlink(target, filepath.Join(fdDir, strconv.Itoa(i))))
	}
	if comm != "" {
		writeFile(t, filepath.Join(dir, "comm"), comm+"\n")
	}
}

func TestInventoryPIDs(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"0", "1", "2", "10", "9", "self", "net", "sys", "-3"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}
	writeFile(t, filepath.Join(root, "42"), "not a directory")

	inv := NewInventory(PathsUnder(root), nil)
	pids, err := inv.PIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 9, 10}, pids)
}

func TestInventoryPIDsMissingRoot(t *testing.T) {
	inv := NewInventory(PathsUnder(filepath.Join(t.TempDir(), "missing")), nil)
	_, err := inv.PIDs()
	assert.Error(t, err)
}

func TestInventorySocketRefs(t *testing.T) {
	root := t.TempDir()
	fakeProcess(t, root, 100, "demo",
		"socket:[12345]",
		"/dev/null",
		"pipe:[999]",
		"anon_inode:[eventpoll]",
		"socket:[54321]",
	)

	inv := NewInventory(PathsUnder(root), nil)
	refs, err := inv.SocketRefs(100)
	require.NoError(t, err)
	assert.Equal(t, []SocketRef{
		{PID: 100, Inode: 12345},
		{PID: 100, Inode: 54321},
	}, refs)
}

func TestInventorySocketRefsSkipsMissingProcess(t *testing.T) {
	root := t.TempDir()
	var skips []ScanSkip
	inv := NewInventory(PathsUnder(root), func(s ScanSkip) { skips = append(skips, s) })

	refs, err := inv.SocketRefs(4242)
	require.NoError(t, err)
	assert.Empty(t, refs)
	require.Len(t, skips, 1)
	assert.Equal(t, 4242, skips[0].PID)
	assert.ErrorIs(t, skips[0].Err, os.ErrNotExist)
}

func TestInventorySocketRefsSkipsNonLinks(t *testing.T) {
	root := t.TempDir()
	fakeProcess(t, root, 7, "demo", "socket:[1]")
	writeFile(t, filepath.Join(root, "7", "fd", "9"), "regular file")

	var skips []ScanSkip
	inv := NewInventory(PathsUnder(root), func(s ScanSkip) { skips = append(skips, s) })
	refs, err := inv.SocketRefs(7)
	require.NoError(t, err)
	assert.Equal(t, []SocketRef{{PID: 7, Inode: 1}}, refs)
	assert.Len(t, skips, 1)
}

func TestInventorySocketRefsInodeOverflow(t *testing.T) {
	root := t.TempDir()
	fakeProcess(t, root, 7, "demo", "socket:[99999999999]")

	inv := NewInventory(PathsUnder(root), nil)
	_, err := inv.SocketRefs(7)
	assert.ErrorIs(t, err, ErrInodeDecode)
}

func TestInventoryCommandName(t *testing.T) {
	root := t.TempDir()
	fakeProcess(t, root, 5, "nginx: worker")

	inv := NewInventory(PathsUnder(root), nil)
	name, err := inv.CommandName(5)
	require.NoError(t, err)
	assert.Equal(t, "nginx: worker", name)

	_, err = inv.CommandName(6)
	assert.ErrorIs(t, err, ErrNameResolution)
}
