//go:build linux

package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/sys/unix"
)

// Large enough for any "socket:[N]" target. Longer targets come back
// truncated, which is fine since they can't be sockets.
const linkBufSize = 256

// PIDs lists live processes in ascending order, excluding 0 and 1.
func (inv *Inventory) PIDs() ([]int, error) {
	entries, err := os.ReadDir(inv.paths.ProcRoot)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", inv.paths.ProcRoot, err)
	}

	pids := make([]int, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if pid, ok := ParsePID(e.Name()); ok {
			pids = append(pids, pid)
		}
	}
	sort.Ints(pids)
	return pids, nil
}

// SocketRefs returns one ref per descriptor of pid that points at a socket,
// in descriptor listing order. An unreadable fd directory or link is skipped.
func (inv *Inventory) SocketRefs(pid int) ([]SocketRef, error) {
	fdDir := inv.paths.fdDir(pid)
	fds, err := os.ReadDir(fdDir)
	if err != nil {
		inv.onSkip(ScanSkip{PID: pid, Path: fdDir, Err: err})
		return nil, nil
	}

	var refs []SocketRef
	buf := make([]byte, linkBufSize)
	for _, fd := range fds {
		linkPath := filepath.Join(fdDir, fd.Name())
		n, err := unix.Readlink(linkPath, buf)
		if err != nil {
			inv.onSkip(ScanSkip{PID: pid, Path: linkPath, Err: err})
			continue
		}
		if n >= len(buf) {
			continue
		}

		inode, ok, err := ParseSocketLink(buf[:n])
		if err != nil {
			return nil, fmt.Errorf("pid %d fd %s: %w", pid, fd.Name(), err)
		}
		if ok {
			refs = append(refs, SocketRef{PID: pid, Inode: inode})
		}
	}
	return refs, nil
}

// CommandName reads /proc/<pid>/comm without its trailing newline.
func (inv *Inventory) CommandName(pid int) (string, error) {
	path := inv.paths.commFile(pid)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: pid %d: %w", ErrNameResolution, pid, err)
	}
	return strings.TrimRightFunc(string(b), unicode.IsSpace), nil
}
