package verb

import (
	"fmt"
	"io"

	"tabverb/pkg/dslerr"
	"tabverb/pkg/record"
	"tabverb/pkg/value"
)

// Sec2GMT replaces a numeric field holding seconds-since-epoch with its
// ISO-8601 GMT rendering, for each of a configured ordered list of field
// names (§4.4). A non-numeric field value is a fatal scan failure,
// mirroring the original's mv_scan_number_or_die contract.
type Sec2GMT struct {
	names []string
	err   error
}

// NewSec2GMT builds a Sec2GMT verb over the given ordered field names.
func NewSec2GMT(names []string) *Sec2GMT {
	return &Sec2GMT{names: append([]string(nil), names...)}
}

// Process implements Verb. A scan failure is fatal per §7 item 4, but
// Process does not panic or exit itself: it records the failure on Err and
// drops the record, leaving the actual diagnostic-and-exit to the driver
// that owns a diag.Logger.
func (s *Sec2GMT) Process(rec *record.Record, ctx *Context) []*record.Record {
	if rec == nil {
		return []*record.Record{nil}
	}

	for _, name := range s.names {
		sval, ok := rec.Get(name)
		if !ok {
			continue
		}
		if sval == "" {
			rec.Put(name, "")
			continue
		}
		scanned, numeric := value.ScanNumberOrDie(sval)
		if !numeric {
			if s.err == nil {
				s.err = dslerr.NonNumericScan(name, sval)
			}
			rec.Free()
			return nil
		}
		stamp, ok := value.FormatISO8601GMT(scanned)
		if !ok {
			if s.err == nil {
				s.err = dslerr.NonNumericScan(name, sval)
			}
			rec.Free()
			return nil
		}
		rec.Put(name, stamp.String())
	}
	return []*record.Record{rec}
}

// Err returns the first fatal scan error encountered, if any. The driver
// checks this after every Feed and exits nonzero per §7 item 4.
func (s *Sec2GMT) Err() error { return s.err }

// Free implements Verb.
func (s *Sec2GMT) Free() {}

// Name implements Named.
func (s *Sec2GMT) Name() string { return "sec2gmt" }

// Sec2GMTUsage writes the sec2gmt verb's usage message to w.
func Sec2GMTUsage(w io.Writer, argv0, verbName string) {
	fmt.Fprintf(w, "Usage: %s %s {comma-separated list of field names}\n", argv0, verbName)
	fmt.Fprintln(w, "Replaces a numeric field representing seconds since the epoch with the")
	fmt.Fprintln(w, "corresponding GMT timestamp.")
}

// ParseSec2GMTArgs parses sec2gmt's one positional CSV field-name list
// (§6). A missing argument is a parse failure: usage to stderr, non-nil
// error.
func ParseSec2GMTArgs(argv0, verbName string, args []string, stderr io.Writer) (*Sec2GMT, error) {
	if len(args) < 1 {
		Sec2GMTUsage(stderr, argv0, verbName)
		return nil, fmt.Errorf("sec2gmt: missing field-name list")
	}
	return NewSec2GMT(splitCSV(args[0])), nil
}
