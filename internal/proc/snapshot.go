package proc

import "github.com/vrmiguel/lipid/pkg/model"

// Snapshot is the set of listening sockets captured at the start of a scan,
// indexed by inode. It is never modified after NewSnapshot returns, so any
// number of goroutines may call Lookup concurrently.
type Snapshot struct {
	sockets []model.ListeningSocket
	byInode map[uint32]int
}

func NewSnapshot(sockets []model.ListeningSocket) *Snapshot {
	s := &Snapshot{
		sockets: sockets,
		byInode: make(map[uint32]int, len(sockets)),
	}
	for i, sock := range sockets {
		// keep the first on duplicate inodes
		if _, ok := s.byInode[sock.Inode]; !ok {
			s.byInode[sock.Inode] = i
		}
	}
	return s
}

// Lookup returns the listening socket with the given inode.
func (s *Snapshot) Lookup(inode uint32) (model.ListeningSocket, bool) {
	i, ok := s.byInode[inode]
	if !ok {
		return model.ListeningSocket{}, false
	}
	return s.sockets[i], true
}

// Sockets returns the captured sockets in table order (IPv4 first).
func (s *Snapshot) Sockets() []model.ListeningSocket {
	out := make([]model.ListeningSocket, len(s.sockets))
	copy(out, s.sockets)
	return out
}

func (s *Snapshot) Len() int {
	return len(s.sockets)
}

// NameFunc resolves the display name of a process.
type NameFunc func(pid int) (string, error)

// Correlate emits one entry per ref whose inode is in the snapshot, in ref
// order. name is only called for refs that matched. Duplicate refs yield
// duplicate entries.
func (s *Snapshot) Correlate(refs []SocketRef, name NameFunc) ([]model.CorrelatedEntry, error) {
	var entries []model.CorrelatedEntry
	for _, ref := range refs {
		sock, ok := s.Lookup(ref.Inode)
		if !ok {
			continue
		}
		command, err := name(ref.PID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.CorrelatedEntry{
			Command: command,
			PID:     ref.PID,
			Address: sock.Address,
			Port:    sock.Port,
			Inode:   sock.Inode,
		})
	}
	return entries, nil
}
