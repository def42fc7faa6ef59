package verb

import (
	"fmt"
	"io"
	"strings"

	"tabverb/pkg/record"
)

// Criterion selects how HavingFields compares a record's field-name set
// against its configured set S (§4.3).
type Criterion int

const (
	// AtLeast passes a record iff every name in S is a field of the record.
	AtLeast Criterion = iota
	// WhichAre passes a record iff its field-name set equals S exactly.
	WhichAre
	// AtMost passes a record iff every one of the record's field names is
	// in S (the record may be a subset of S).
	AtMost
)

// HavingFields conditionally passes records through depending on their
// field-name set (§4.3). It never inspects field values.
type HavingFields struct {
	names     *record.FieldSet
	criterion Criterion
}

// NewHavingFields builds a HavingFields verb over the given field names and
// criterion.
func NewHavingFields(names []string, criterion Criterion) *HavingFields {
	return &HavingFields{names: record.NewFieldSet(names), criterion: criterion}
}

// Process implements Verb.
func (h *HavingFields) Process(rec *record.Record, ctx *Context) []*record.Record {
	if rec == nil {
		return []*record.Record{nil}
	}

	var pass bool
	switch h.criterion {
	case AtLeast:
		pass = h.passesAtLeast(rec)
	case WhichAre:
		pass = h.passesWhichAre(rec)
	case AtMost:
		pass = h.passesAtMost(rec)
	}

	if !pass {
		rec.Free()
		return nil
	}
	return []*record.Record{rec}
}

// passesAtLeast mirrors the C original's early-exit-on-count-match loop:
// it counts field names found in S while iterating the record once, and
// declares a match the moment that count reaches |S|.
func (h *HavingFields) passesAtLeast(rec *record.Record) bool {
	want := h.names.Len()
	if want == 0 {
		return true
	}
	found := 0
	matched := false
	rec.Iterate(func(key, _ string) bool {
		if h.names.Has(key) {
			found++
			if found == want {
				matched = true
				return false
			}
		}
		return true
	})
	return matched
}

func (h *HavingFields) passesWhichAre(rec *record.Record) bool {
	if rec.FieldCount() != h.names.Len() {
		return false
	}
	allMember := true
	rec.Iterate(func(key, _ string) bool {
		if !h.names.Has(key) {
			allMember = false
			return false
		}
		return true
	})
	return allMember
}

func (h *HavingFields) passesAtMost(rec *record.Record) bool {
	allMember := true
	rec.Iterate(func(key, _ string) bool {
		if !h.names.Has(key) {
			allMember = false
			return false
		}
		return true
	})
	return allMember
}

// Free implements Verb. HavingFields holds no resources beyond its
// FieldSet, which needs no explicit release.
func (h *HavingFields) Free() {}

// Name implements Named.
func (h *HavingFields) Name() string { return "having-fields" }

// HavingFieldsUsage writes the having-fields verb's usage message to w,
// matching the flag set §6 describes.
func HavingFieldsUsage(w io.Writer, argv0, verbName string) {
	fmt.Fprintf(w, "Usage: %s %s [options]\n", argv0, verbName)
	fmt.Fprintln(w, "--at-least  {a,b,c}")
	fmt.Fprintln(w, "--which-are {a,b,c}")
	fmt.Fprintln(w, "--at-most   {a,b,c}")
	fmt.Fprintln(w, "Conditionally passes through records depending on each record's field names.")
}

// ParseHavingFieldsArgs parses having-fields's CLI arguments (§6): exactly
// one of --at-least/--which-are/--at-most, each taking a comma-separated
// field list. A duplicate criterion flag, a missing field list, or any
// unrecognized flag is a parse failure — ParseHavingFieldsArgs writes usage
// to stderr and returns a non-nil error rather than silently letting the
// later flag win (§9's Open Question resolution: reject, don't let later
// flags win).
func ParseHavingFieldsArgs(argv0, verbName string, args []string, stderr io.Writer) (*HavingFields, error) {
	var (
		names       []string
		haveNames   bool
		haveCrit    bool
		criterion   Criterion
		criterionOf = map[string]Criterion{
			"--at-least":  AtLeast,
			"--which-are": WhichAre,
			"--at-most":   AtMost,
		}
	)

	i := 0
	for i < len(args) {
		arg := args[i]
		crit, known := criterionOf[arg]
		if !known {
			HavingFieldsUsage(stderr, argv0, verbName)
			return nil, fmt.Errorf("having-fields: unrecognized flag %q", arg)
		}
		if haveCrit {
			HavingFieldsUsage(stderr, argv0, verbName)
			return nil, fmt.Errorf("having-fields: multiple criterion flags given")
		}
		if i+1 >= len(args) {
			HavingFieldsUsage(stderr, argv0, verbName)
			return nil, fmt.Errorf("having-fields: %s requires a field list", arg)
		}
		criterion = crit
		haveCrit = true
		names = splitCSV(args[i+1])
		haveNames = true
		i += 2
	}

	if !haveNames || !haveCrit {
		HavingFieldsUsage(stderr, argv0, verbName)
		return nil, fmt.Errorf("having-fields: a criterion flag and field list are required")
	}

	return NewHavingFields(names, criterion), nil
}

func splitCSV(s string) []string {
	return strings.Split(s, ",")
}
