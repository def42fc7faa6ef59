// Package verb implements the streaming verb pipeline: per-record
// transformation stages threaded together with end-of-stream propagation.
package verb

import (
	"time"

	"tabverb/pkg/record"
)

// Context carries per-run state visible to every verb's Process call. It is
// intentionally thin: the record-count fields a verb might want to log
// against, nothing pipeline-global.
type Context struct {
	// NR is the 1-based ordinal of the record currently in flight, or the
	// final record count when Process is invoked with a nil end-of-stream
	// record.
	NR int
}

// Verb is a per-record transformation stage with private state (§4.2). A
// verb may pass a record through unchanged, drop it, or synthesize new
// records; it signals end-of-stream by returning a result list whose final
// element is nil, once, in response to being fed a nil record.
type Verb interface {
	// Process transforms one record, or nil to signal end-of-stream. It
	// returns zero or more output records in order; a nil entry is the
	// end-of-stream sentinel and may appear only as the last element.
	Process(rec *record.Record, ctx *Context) []*record.Record

	// Free releases the verb's private state. Called exactly once at
	// pipeline teardown.
	Free()
}

// Named is implemented by verbs that know their own registry name, used
// only for labeling metrics/diagnostics — it has no bearing on Process
// semantics.
type Named interface {
	Name() string
}

// verbName returns v's registered name if it implements Named, or
// "unknown" otherwise, so a verb that doesn't bother implementing Named
// still yields a usable metric label rather than breaking the pipeline.
func verbName(v Verb) string {
	if n, ok := v.(Named); ok {
		return n.Name()
	}
	return "unknown"
}

// Pipeline threads a record through an ordered sequence of verbs, feeding
// each verb's output (including the terminal nil) to the next verb in
// order (§5 "Ordering").
type Pipeline struct {
	verbs []Verb
	ctx   Context
	done  bool

	// OnDrop, if set, is called once per record a verb drops mid-pipeline
	// (a non-nil input record that yields zero output records from that
	// verb's Process call). Pipeline has no metrics dependency of its own;
	// a driver wires this to its own counters.
	OnDrop func(verb string)

	// OnVerbDuration, if set, is called after each verb's Process call
	// with the verb's name and the wall-clock seconds spent in it.
	OnVerbDuration func(verb string, seconds float64)
}

// NewPipeline returns a Pipeline over verbs, run in the given order.
func NewPipeline(verbs []Verb) *Pipeline {
	return &Pipeline{verbs: verbs}
}

// Feed pushes one record (or nil for end-of-stream) through every verb in
// order and returns the final set of output records reaching the end of
// the pipeline. Calling Feed(nil) more than once, or calling Feed at all
// after a prior nil has been fed, is a caller error; Pipeline does not
// re-invoke a verb once it has seen end-of-stream (§4.2, §8).
func (p *Pipeline) Feed(rec *record.Record) []*record.Record {
	if p.done {
		return nil
	}
	if rec != nil {
		p.ctx.NR++
	}

	batch := []*record.Record{rec}
	for _, v := range p.verbs {
		wasNonNil := false
		for _, r := range batch {
			if r != nil {
				wasNonNil = true
				break
			}
		}

		start := time.Now()
		var next []*record.Record
		for _, r := range batch {
			next = append(next, v.Process(r, &p.ctx)...)
		}
		if p.OnVerbDuration != nil {
			p.OnVerbDuration(verbName(v), time.Since(start).Seconds())
		}

		if wasNonNil && len(next) == 0 && p.OnDrop != nil {
			p.OnDrop(verbName(v))
		}
		batch = next
	}

	for _, r := range batch {
		if r == nil {
			p.done = true
			break
		}
	}
	return batch
}

// Close calls Free on every verb exactly once, in pipeline order.
func (p *Pipeline) Close() {
	for _, v := range p.verbs {
		v.Free()
	}
}
