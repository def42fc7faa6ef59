// Package iolines implements Miller's native DKVP (delimited key-value
// pairs) line format as the minimal concrete wire codec standing in for
// the input/output layer spec.md treats as out of scope: one record per
// line, fields as "k1=v1,k2=v2".
package iolines

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tabverb/pkg/record"
)

// FieldSep separates fields within a line.
const FieldSep = ","

// PairSep separates a field's key from its value.
const PairSep = "="

// Reader reads DKVP-encoded records from an underlying io.Reader, one per
// line, in order.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r as a DKVP Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Read returns the next record, or nil, io.EOF once the stream is
// exhausted. Blank lines are skipped.
func (d *Reader) Read() (*record.Record, error) {
	for d.scanner.Scan() {
		line := d.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	if err := d.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func parseLine(line string) (*record.Record, error) {
	rec := record.New()
	for _, pair := range strings.Split(line, FieldSep) {
		kv := strings.SplitN(pair, PairSep, 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("iolines: malformed field %q in line %q", pair, line)
		}
		rec.Put(kv[0], kv[1])
	}
	return rec, nil
}

// Writer writes records to an underlying io.Writer in DKVP form, one per
// line, fields in record order.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a DKVP Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write renders rec as one DKVP line, terminated by a newline.
func (d *Writer) Write(rec *record.Record) error {
	var b strings.Builder
	first := true
	rec.Iterate(func(k, v string) bool {
		if !first {
			b.WriteString(FieldSep)
		}
		first = false
		b.WriteString(k)
		b.WriteString(PairSep)
		b.WriteString(v)
		return true
	})
	b.WriteString("\n")
	_, err := io.WriteString(d.w, b.String())
	return err
}
