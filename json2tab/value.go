package json2tab

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Object is a JSON object that keeps its keys in insertion order.
// encoding/json decodes objects into unordered maps, which loses the
// column order the generators depend on, so parsing goes through the
// token stream instead.
type Object struct {
	Keys   []string
	Fields map[string]any
}

func NewObject() *Object {
	return &Object{Fields: make(map[string]any)}
}

func (o *Object) Set(key string, value any) {
	if _, ok := o.Fields[key]; !ok {
		o.Keys = append(o.Keys, key)
	}
	o.Fields[key] = value
}

func (o *Object) Get(key string) (any, bool) {
	v, ok := o.Fields[key]
	return v, ok
}

func (o *Object) Len() int {
	return len(o.Keys)
}

// MarshalJSON writes the object back out with its original key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range o.Keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		v, err := json.Marshal(o.Fields[key])
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// ParseValue parses raw JSON text into a value tree. Objects become
// *Object, arrays []any, numbers float64, strings/booleans/null their
// native Go forms. Returns an error for malformed input; the flattener
// itself never sees unparsed text.
func ParseValue(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	value, err := parseNext(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON input: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("failed to parse JSON input: unexpected trailing content")
	}
	return value, nil
}

func parseNext(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, float64, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := parseNext(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		// consume the closing brace
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			value, err := parseNext(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}
