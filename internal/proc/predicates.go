package proc

import (
	"bytes"
	"fmt"
	"strconv"
)

var (
	socketLinkPrefix = []byte("socket:[")
	socketLinkSuffix = []byte("]")
)

// IsListeningState reports whether a socket table st column is LISTEN.
func IsListeningState(st string) bool {
	return st == ListenState
}

// ParsePID returns the PID named by a process registry entry. Only plain
// decimal names above 1 count, which excludes the idle task and init.
func ParsePID(name string) (int, bool) {
	if name == "" || !isDigits([]byte(name)) {
		return 0, false
	}
	pid, err := strconv.Atoi(name)
	if err != nil || pid <= 1 {
		return 0, false
	}
	return pid, true
}

// ParseSocketLink extracts the inode from a descriptor link target of the
// form "socket:[12345]". ok is false for anything else (files, pipes,
// anon inodes). An inode that does not fit in 32 bits is an error.
func ParseSocketLink(target []byte) (inode uint32, ok bool, err error) {
	if !bytes.HasPrefix(target, socketLinkPrefix) || !bytes.HasSuffix(target, socketLinkSuffix) {
		return 0, false, nil
	}
	digits := target[len(socketLinkPrefix) : len(target)-len(socketLinkSuffix)]
	if len(digits) == 0 || !isDigits(digits) {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(string(digits), 10, 32)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %q: %v", ErrInodeDecode, target, err)
	}
	return uint32(n), true, nil
}

func isDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
