package model

import (
	"fmt"
	"net/netip"
	"time"
)

// ListeningSocket is a TCP socket in LISTEN state as read from /proc/net/tcp{,6}.
type ListeningSocket struct {
	Address netip.Addr `json:"address"`
	Port    uint16     `json:"port"`
	Inode   uint32     `json:"inode"`
}

func (s ListeningSocket) String() string {
	return fmt.Sprintf("%s:%d - %d", s.Address, s.Port, s.Inode)
}

// CorrelatedEntry ties a listening socket to the process holding a descriptor on it.
type CorrelatedEntry struct {
	Command string     `json:"command"`
	PID     int        `json:"pid"`
	Address netip.Addr `json:"address"`
	Port    uint16     `json:"port"`
	Inode   uint32     `json:"inode"`
}

func (e CorrelatedEntry) String() string {
	return fmt.Sprintf("%s %d %s:%d - %d", e.Command, e.PID, e.Address, e.Port, e.Inode)
}

// Report is the result of a single scan.
type Report struct {
	ScanID  string            `json:"scan_id"`
	TakenAt time.Time         `json:"taken_at"`
	Entries []CorrelatedEntry `json:"entries"`
}
