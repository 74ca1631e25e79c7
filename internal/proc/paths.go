package proc

import (
	"path/filepath"
	"strconv"
)

// ListenState is the st column value for TCP_LISTEN in /proc/net/tcp and /proc/net/tcp6.
const ListenState = "0A"

const defaultProcRoot = "/proc"

// Paths locates everything a scan reads. Tests point it at a fabricated tree.
type Paths struct {
	ProcRoot  string
	TCPTable  string
	TCP6Table string
}

func DefaultPaths() Paths {
	return PathsUnder(defaultProcRoot)
}

// PathsUnder derives the process registry and both socket tables from root.
func PathsUnder(root string) Paths {
	return Paths{
		ProcRoot:  root,
		TCPTable:  filepath.Join(root, "net", "tcp"),
		TCP6Table: filepath.Join(root, "net", "tcp6"),
	}
}

func (p Paths) fdDir(pid int) string {
	return filepath.Join(p.ProcRoot, strconv.Itoa(pid), "fd")
}

func (p Paths) commFile(pid int) string {
	return filepath.Join(p.ProcRoot, strconv.Itoa(pid), "comm")
}
