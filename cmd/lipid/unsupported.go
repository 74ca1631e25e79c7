//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"lipid is only supported on Linux.\n\nIt reads /proc/net/tcp, /proc/net/tcp6 and /proc/<pid>/fd, which other platforms do not provide.",
	)
	os.Exit(1)
}
