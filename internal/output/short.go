package output

import (
	"fmt"
	"io"

	"github.com/vrmiguel/lipid/pkg/model"
)

var (
	colorResetShort = "\033[0m"
	colorGreenShort = "\033[32m"
	colorDimShort   = "\033[2m"
)

// RenderShort prints one "command pid address:port - inode" line per entry.
func RenderShort(w io.Writer, r model.Report, colorEnabled bool) error {
	for _, e := range r.Entries {
		cmd := SanitizeTerminal(e.Command)
		var err error
		if colorEnabled {
			_, err = fmt.Fprintf(w, "%s%s%s %d %s:%d %s- %d%s\n",
				colorGreenShort, cmd, colorResetShort, e.PID, e.Address, e.Port, colorDimShort, e.Inode, colorResetShort)
		} else {
			_, err = fmt.Fprintf(w, "%s %d %s:%d - %d\n", cmd, e.PID, e.Address, e.Port, e.Inode)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
