package proc

import "fmt"

// SocketRef is a descriptor of process PID that points at socket Inode.
type SocketRef struct {
	PID   int
	Inode uint32
}

// ScanSkip describes a process or descriptor that vanished or could not be
// read during the walk. It is reported, never returned as an error.
type ScanSkip struct {
	PID  int
	Path string
	Err  error
}

func (s ScanSkip) String() string {
	return fmt.Sprintf("skip pid %d: %s: %v", s.PID, s.Path, s.Err)
}

// Inventory walks the process registry under Paths.ProcRoot.
type Inventory struct {
	paths  Paths
	onSkip func(ScanSkip)
}

// NewInventory returns an Inventory reporting skips to onSkip, which may be nil.
func NewInventory(paths Paths, onSkip func(ScanSkip)) *Inventory {
	if onSkip == nil {
		onSkip = func(ScanSkip) {}
	}
	return &Inventory{paths: paths, onSkip: onSkip}
}
