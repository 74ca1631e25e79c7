//go:build linux

package pipeline

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/vrmiguel/lipid/internal/proc"
	"github.com/vrmiguel/lipid/pkg/model"
)

const nameCacheSize = 4096

type Options struct {
	Paths proc.Paths
	// Workers > 1 scans processes concurrently. Output order does not change.
	Workers int
	// StrictNames makes an unreadable comm file abort the scan instead of
	// dropping that process's entries.
	StrictNames bool
	Logger      *log.Logger
}

// Scanner produces Reports. Nothing is carried from one Scan to the next.
type Scanner struct {
	opts Options
	log  *log.Logger
	inv  *proc.Inventory
}

// scan is the state of a single Scan call.
type scan struct {
	snap  *proc.Snapshot
	names *lru.LRU[int, string]
}

func NewScanner(opts Options) *Scanner {
	if opts.Paths == (proc.Paths{}) {
		opts.Paths = proc.DefaultPaths()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Scanner{
		opts: opts,
		log:  logger,
	}
	s.inv = proc.NewInventory(opts.Paths, func(skip proc.ScanSkip) {
		s.log.Print(skip)
	})
	return s
}

// Scan takes one snapshot of the socket tables and attributes every
// listening socket found in it to the processes holding it.
func (s *Scanner) Scan() (model.Report, error) {
	takenAt := time.Now()

	snap, err := proc.ReadSnapshot(s.opts.Paths)
	if err != nil {
		return model.Report{}, err
	}
	s.log.Printf("captured %d listening sockets", snap.Len())
	for _, sock := range snap.Sockets() {
		s.log.Printf("listening %s", sock)
	}

	pids, err := s.inv.PIDs()
	if err != nil {
		return model.Report{}, err
	}

	// comm is read at most once per pid within this scan; a ttl of 0 never expires
	sc := &scan{
		snap:  snap,
		names: lru.NewLRU[int, string](nameCacheSize, nil, 0),
	}

	var entries []model.CorrelatedEntry
	if s.opts.Workers > 1 {
		entries, err = s.scanConcurrent(sc, pids)
	} else {
		entries, err = s.scanSequential(sc, pids)
	}
	if err != nil {
		return model.Report{}, err
	}

	return model.Report{
		ScanID:  uuid.NewString(),
		TakenAt: takenAt,
		Entries: entries,
	}, nil
}

func (s *Scanner) scanSequential(sc *scan, pids []int) ([]model.CorrelatedEntry, error) {
	var entries []model.CorrelatedEntry
	for _, pid := range pids {
		found, err := s.scanProcess(sc, pid)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	return entries, nil
}

func (s *Scanner) scanConcurrent(sc *scan, pids []int) ([]model.CorrelatedEntry, error) {
	// one slot per pid, each written by exactly one goroutine
	perPID := make([][]model.CorrelatedEntry, len(pids))

	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for i, pid := range pids {
		i, pid := i, pid
		g.Go(func() error {
			found, err := s.scanProcess(sc, pid)
			if err != nil {
				return err
			}
			perPID[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var entries []model.CorrelatedEntry
	for _, found := range perPID {
		entries = append(entries, found...)
	}
	return entries, nil
}

func (s *Scanner) scanProcess(sc *scan, pid int) ([]model.CorrelatedEntry, error) {
	refs, err := s.inv.SocketRefs(pid)
	if err != nil || len(refs) == 0 {
		return nil, err
	}

	entries, err := sc.snap.Correlate(refs, func(pid int) (string, error) {
		return s.commandName(sc, pid)
	})
	if errors.Is(err, proc.ErrNameResolution) && !s.opts.StrictNames {
		s.log.Printf("skip pid %d: %v", pid, err)
		return nil, nil
	}
	return entries, err
}

func (s *Scanner) commandName(sc *scan, pid int) (string, error) {
	if name, ok := sc.names.Get(pid); ok {
		return name, nil
	}
	name, err := s.inv.CommandName(pid)
	if err != nil {
		return "", err
	}
	sc.names.Add(pid, name)
	return name, nil
}
