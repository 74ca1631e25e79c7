//go:build linux

package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vrmiguel/lipid/internal/output"
	"github.com/vrmiguel/lipid/internal/pipeline"
	"github.com/vrmiguel/lipid/internal/proc"
	"github.com/vrmiguel/lipid/internal/tui"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
}

type rootFlags struct {
	json        bool
	table       bool
	noColor     bool
	interactive bool
	workers     int
	procRoot    string
	strictNames bool
	verbose     bool
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "lipid",
		Short: "List listening TCP sockets and the processes that own them",
		Long: `lipid reads /proc/net/tcp and /proc/net/tcp6 for sockets in LISTEN state
and matches their inodes against the socket descriptors under /proc/<pid>/fd.

Processes whose descriptors can't be read (another user's, or gone mid-scan)
are skipped; run as root to see everything.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionString(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.json, "json", false, "output the report as JSON")
	flags.BoolVar(&f.table, "table", false, "output a bordered table")
	flags.BoolVar(&f.noColor, "no-color", false, "disable colorized output")
	flags.BoolVarP(&f.interactive, "interactive", "i", false, "interactive TUI mode")
	flags.IntVar(&f.workers, "workers", 1, "number of processes scanned concurrently")
	flags.StringVar(&f.procRoot, "proc-root", proc.DefaultPaths().ProcRoot, "procfs mount point")
	flags.BoolVar(&f.strictNames, "strict-names", false, "fail when a matched process's name can't be read")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log skipped processes and descriptors to stderr")
	cmd.MarkFlagsMutuallyExclusive("json", "table", "interactive")

	return cmd
}

func versionString() string {
	s := version
	if commit != "" {
		s += " (commit " + commit
		if buildDate != "" {
			s += ", built " + buildDate
		}
		s += ")"
	}
	return s
}

func run(cmd *cobra.Command, f rootFlags) error {
	if f.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", f.workers)
	}

	logWriter := io.Discard
	if f.verbose {
		logWriter = cmd.ErrOrStderr()
	}

	scanner := pipeline.NewScanner(pipeline.Options{
		Paths:       proc.PathsUnder(f.procRoot),
		Workers:     f.workers,
		StrictNames: f.strictNames,
		Logger:      log.New(logWriter, "lipid: ", 0),
	})

	report, err := scanner.Scan()
	if err != nil {
		return err
	}

	if f.interactive {
		return tui.Start(version, report)
	}

	out := cmd.OutOrStdout()
	colorEnabled := !f.noColor && isTerminal(out)

	switch {
	case f.json:
		return output.WriteJSON(out, report)
	case f.table:
		return output.RenderTable(out, report, colorEnabled)
	default:
		return output.RenderShort(out, report, colorEnabled)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}
