package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	Null Kind = iota
	String
	Number
	Bool
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "null"
	}
}

// Value is a decoded JSON value that remembers the key order of objects.
// The zero Value is null.
type Value struct {
	kind   Kind
	raw    json.RawMessage
	str    string
	items  []Value
	fields *orderedmap.OrderedMap[string, Value]
}

// Field is a single key/value pair of an object, in source order.
type Field struct {
	Key   string
	Value Value
}

// Decode parses a JSON document into a Value.
func Decode(data []byte) (Value, error) {
	var probe json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Value{}, err
	}
	return decode(bytes.TrimSpace(probe))
}

func decode(data []byte) (Value, error) {
	v := Value{raw: data}
	switch data[0] {
	case '{':
		raw := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(data, raw); err != nil {
			return Value{}, err
		}
		v.kind = Object
		v.fields = orderedmap.New[string, Value]()
		for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
			child, err := decode(bytes.TrimSpace(pair.Value))
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", pair.Key, err)
			}
			v.fields.Set(pair.Key, child)
		}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return Value{}, err
		}
		v.kind = Array
		v.items = make([]Value, 0, len(elems))
		for i, elem := range elems {
			child, err := decode(bytes.TrimSpace(elem))
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			v.items = append(v.items, child)
		}
	case '"':
		v.kind = String
		if err := json.Unmarshal(data, &v.str); err != nil {
			return Value{}, err
		}
	case 't', 'f':
		v.kind = Bool
	case 'n':
		v.kind = Null
	default:
		v.kind = Number
	}
	return v, nil
}

// Kind reports the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null or was never set.
func (v Value) IsNull() bool { return v.kind == Null }

// Empty reports whether v is null, an empty string, an empty array or an
// empty object.
func (v Value) Empty() bool {
	switch v.kind {
	case Null:
		return true
	case String:
		return v.str == ""
	case Array:
		return len(v.items) == 0
	case Object:
		return v.fields.Len() == 0
	}
	return false
}

// Get returns the named field of an object. Missing fields, null fields and
// lookups on non-objects all report false.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	child, ok := v.fields.Get(key)
	if !ok || child.kind == Null {
		return Value{}, false
	}
	return child, true
}

// Lookup returns the text of the named field, or def when it is absent.
func (v Value) Lookup(key, def string) string {
	child, ok := v.Get(key)
	if !ok {
		return def
	}
	return child.Text()
}

// Section returns the named field if it is an object and null otherwise.
func (v Value) Section(key string) Value {
	child, ok := v.Get(key)
	if !ok || child.kind != Object {
		return Value{}
	}
	return child
}

// Fields returns the fields of an object in source order.
func (v Value) Fields() []Field {
	if v.kind != Object {
		return nil
	}
	out := make([]Field, 0, v.fields.Len())
	for pair := v.fields.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Field{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Items returns the elements of an array.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// List treats v as a list: arrays yield their elements, null and empty
// strings yield nothing and any other value is a single element.
func (v Value) List() []Value {
	switch {
	case v.kind == Array:
		return v.items
	case v.Empty():
		return nil
	default:
		return []Value{v}
	}
}

// Text renders v for substitution into a page. Strings are verbatim,
// numbers keep their JSON literal and composite values become compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case String:
		return v.str
	case Null:
		return "null"
	case Object, Array:
		var buf bytes.Buffer
		if err := json.Compact(&buf, v.raw); err != nil {
			return string(v.raw)
		}
		return buf.String()
	default:
		return string(v.raw)
	}
}

// JoinText renders every element of v as text joined by sep.
func (v Value) JoinText(sep string) string {
	items := v.List()
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Text())
	}
	return strings.Join(parts, sep)
}
