// Package record implements lrec: the ordered name->value map that flows
// through a verb pipeline. Both field names and field values are strings;
// records never hold the DSL's tagged value type.
package record

import "container/list"

// entry is one (key, value) pair, stored as the payload of the
// doubly-linked-list element that gives Record its O(1) insertion-order
// iteration.
type entry struct {
	key   string
	value string
}

// Record is an ordered map from field name to field value. Insertion order
// is observable and preserved across Put, Remove, and Iterate. Put of an
// existing key overwrites the value in place without moving its position.
type Record struct {
	order *list.List
	index map[string]*list.Element
}

// New returns an empty Record.
func New() *Record {
	return &Record{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// Get returns the field's value and whether it is present. A missing field
// and a field whose value is the empty string are distinguished by the ok
// return, not by the returned string.
func (r *Record) Get(key string) (string, bool) {
	el, ok := r.index[key]
	if !ok {
		return "", false
	}
	return el.Value.(*entry).value, true
}

// Put sets key's value, overwriting in place if key already exists, or
// appending at the end otherwise. An empty value is a valid, observable
// field.
func (r *Record) Put(key, value string) {
	if el, ok := r.index[key]; ok {
		el.Value.(*entry).value = value
		return
	}
	el := r.order.PushBack(&entry{key: key, value: value})
	r.index[key] = el
}

// Remove deletes key if present; it is a no-op otherwise.
func (r *Record) Remove(key string) {
	el, ok := r.index[key]
	if !ok {
		return
	}
	r.order.Remove(el)
	delete(r.index, key)
}

// FieldCount returns the number of fields currently in the record.
func (r *Record) FieldCount() int {
	return r.order.Len()
}

// Iterate calls fn for each (key, value) pair in insertion order. It stops
// early if fn returns false.
func (r *Record) Iterate(fn func(key, value string) bool) {
	for el := r.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry)
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.order.Len())
	r.Iterate(func(k, _ string) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Copy returns a new Record with the same fields in the same order. Verbs
// that synthesize a derived record from an input one use this rather than
// aliasing the caller's Record.
func (r *Record) Copy() *Record {
	out := New()
	r.Iterate(func(k, v string) bool {
		out.Put(k, v)
		return true
	})
	return out
}

// Free releases the record's contents. In a garbage-collected runtime this
// only clears references eagerly so a verb that drops a record does not
// keep it alive through a stale map entry; callers must not use the
// Record afterward.
func (r *Record) Free() {
	r.order.Init()
	for k := range r.index {
		delete(r.index, k)
	}
}
