package mcaddon

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Ordered is a JSON object that remembers insertion order. The add-on format
// is order-tolerant, but authored documents keep components and passthrough
// fields in the order the caller declared them, the way a hand-written JSON
// file would.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrdered returns an empty ordered object. Each entity gets its own
// instance; ordered objects are never shared.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{values: map[string]V{}}
}

// Len reports the number of entries.
func (o *Ordered[V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Get returns the value for key.
func (o *Ordered[V]) Get(key string) (V, bool) {
	if o == nil {
		var zero V
		return zero, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set inserts or replaces the value for key. Replacing keeps the key's
// original position, mirroring how rewriting a JSON object key in place
// behaves (last write wins on value, first write wins on position).
func (o *Ordered[V]) Set(key string, v V) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key and returns whether it was present.
func (o *Ordered[V]) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, exists := o.values[key]; !exists {
		return false
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (o *Ordered[V]) Keys() []string {
	if o == nil {
		return nil
	}
	cp := make([]string, len(o.keys))
	copy(cp, o.keys)
	return cp
}

// Range calls fn for each entry in insertion order, stopping on false.
func (o *Ordered[V]) Range(fn func(key string, v V) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy.
func (o *Ordered[V]) Clone() *Ordered[V] {
	cp := NewOrdered[V]()
	o.Range(func(k string, v V) bool {
		cp.Set(k, v)
		return true
	})
	return cp
}

// MarshalJSON emits entries in insertion order.
func (o *Ordered[V]) MarshalJSON() ([]byte, error) {
	if o == nil || len(o.keys) == 0 {
		return []byte("{}"), nil
	}
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object capturing top-level key order. Nested objects
// decode into plain maps; the format's equality is key-set based, so only the
// authored top level keeps ordering.
func (o *Ordered[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ordered: expected object, got %v", tok)
	}
	o.keys = nil
	o.values = map[string]V{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ordered: expected string key, got %v", keyTok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return err
		}
		o.Set(key, v)
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
