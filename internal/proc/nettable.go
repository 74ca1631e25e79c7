package proc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vrmiguel/lipid/pkg/model"
)

// Field positions in /proc/net/tcp. The inode is located from the end of
// the line instead, since trailing columns vary between kernels.
const (
	fieldLocalAddress = 1
	fieldState        = 3
)

// ReadListeningSockets returns every LISTEN entry of a socket table file in file order.
func ReadListeningSockets(path string) ([]model.ListeningSocket, error) {
	f, err := os.Open(path)
	if err != nil {
		// *fs.PathError already names the path
		return nil, err
	}
	defer f.Close()

	sockets, err := parseListeningSockets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sockets, nil
}

func parseListeningSockets(r io.Reader) ([]model.ListeningSocket, error) {
	var sockets []model.ListeningSocket

	// bufio.Scanner keeps one buffer for the whole file
	scanner := bufio.NewScanner(r)
	scanner.Scan() // skip header

	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) <= fieldState || !IsListeningState(fields[fieldState]) {
			continue
		}

		s, err := parseListeningLine(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sockets = append(sockets, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read socket table: %w", err)
	}

	return sockets, nil
}

func parseListeningLine(fields []string) (model.ListeningSocket, error) {
	// The inode has to sit after the state column.
	if len(fields) <= fieldState+1 {
		return model.ListeningSocket{}, fmt.Errorf("%w: missing inode", ErrTableParse)
	}

	addr, port, err := ParseAddressPort(fields[fieldLocalAddress])
	if err != nil {
		return model.ListeningSocket{}, fmt.Errorf("%w: %w", ErrTableParse, err)
	}

	rawInode := fields[len(fields)-1]
	inode, err := strconv.ParseUint(rawInode, 10, 32)
	if err != nil {
		return model.ListeningSocket{}, fmt.Errorf("%w: inode %q: %v", ErrTableParse, rawInode, err)
	}

	return model.ListeningSocket{
		Address: addr,
		Port:    port,
		Inode:   uint32(inode),
	}, nil
}

// ReadSnapshot reads the IPv4 table and then the IPv6 table and concatenates them.
func ReadSnapshot(paths Paths) (*Snapshot, error) {
	v4, err := ReadListeningSockets(paths.TCPTable)
	if err != nil {
		return nil, err
	}
	v6, err := ReadListeningSockets(paths.TCP6Table)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(append(v4, v6...)), nil
}
