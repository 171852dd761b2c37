package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind discriminates the JSON value variants.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value as a tagged variant. Whether a value is a
// composite is a structural question answered by its Kind, so rules never
// depend on runtime type tricks.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  *Object
}

func (v Value) Kind() Kind { return v.kind }

// IsObject reports whether the value is a composite (keyed mapping).
func (v Value) IsObject() bool { return v.kind == KindObject }

// Text returns the string payload, or "" for non-string values.
func (v Value) Text() string { return v.str }

// Object returns the object payload, or nil for non-object values.
func (v Value) Object() *Object { return v.obj }

// Array returns the array payload, or nil for non-array values.
func (v Value) Array() []Value { return v.arr }

// Object is a JSON object with key insertion order preserved, so per-entry
// rules report violations in the order the author wrote the entries.
type Object struct {
	keys   []string
	values map[string]Value
}

func newObject() *Object {
	return &Object{values: make(map[string]Value)}
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// set stores a value under key. Duplicate keys keep their first position and
// take the last value, matching what a JavaScript JSON.parse would produce.
func (o *Object) set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Parse decodes raw JSON bytes into a Value. Object key order is preserved.
func Parse(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := parseNext(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, errors.New("unexpected end of JSON input")
		}
		return Value{}, err
	}

	// A document is a single JSON value; anything after it is a defect.
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.New("unexpected content after top-level value")
	}

	return v, nil
}

func parseNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case bool:
		return Value{kind: KindBool, b: t}, nil
	case json.Number:
		return Value{kind: KindNumber, num: t}, nil
	case string:
		return Value{kind: KindString, str: t}, nil
	case nil:
		return Value{kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (Value, error) {
	obj := newObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := parseNext(dec)
		if err != nil {
			return Value{}, err
		}
		obj.set(key, val)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindObject, obj: obj}, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		item, err := parseNext(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, arr: items}, nil
}
