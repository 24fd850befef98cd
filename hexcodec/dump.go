package hexcodec

import (
	"fmt"
	"io"
	"strings"

	"github.com/oddbits/bitkit/bitbuf"
	"github.com/oddbits/bitkit/config"
)

// Dumper renders buffer contents as a hex listing: two lowercase digits
// per byte, extra spacing between byte groups, and a zero-padded byte
// offset label starting every row.
type Dumper struct {
	cfg *config.Config
}

func NewDumper(cfg *config.Config) *Dumper {
	return &Dumper{cfg: cfg}
}

// Dump writes the listing for buf. An empty buffer produces no output.
// No trailing newline is written.
func (d *Dumper) Dump(w io.Writer, buf *bitbuf.Buffer) error {
	data := buf.Bytes()
	if len(data) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%0*d\t", d.cfg.DumpLabelWidth, 0); err != nil {
		return err
	}
	for i, b := range data {
		if i != 0 && i%d.cfg.DumpGroupBytes == 0 {
			if _, err := io.WriteString(w, "  "); err != nil {
				return err
			}
		}
		if i != 0 && i%d.cfg.DumpRowBytes == 0 {
			if _, err := fmt.Fprintf(w, "\n%0*d\t", d.cfg.DumpLabelWidth, i); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%02x ", b); err != nil {
			return err
		}
	}

	return nil
}

// Dump writes buf with the default layout.
func Dump(w io.Writer, buf *bitbuf.Buffer) error {
	return NewDumper(config.DefaultConfig()).Dump(w, buf)
}

// DumpString renders buf with the default layout.
func DumpString(buf *bitbuf.Buffer) string {
	var sb strings.Builder
	_ = Dump(&sb, buf)
	return sb.String()
}
