package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

var jsonNull = []byte("null")

// Optional records whether a JSON key was present in a request body,
// separating "not provided" from "provided as null" and from a value.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// Present reports whether the key was sent with a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Or returns the value when present, fallback otherwise.
func (o Optional[T]) Or(fallback T) T {
	if o.Present() {
		return o.Value
	}
	return fallback
}

// LooseString accepts a JSON string, number or boolean and keeps its
// string form. null decodes to the empty string.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
	case 't', 'f':
		v, err := strconv.ParseBool(string(data))
		if err != nil {
			return err
		}
		*s = LooseString(strconv.FormatBool(v))
	case '{', '[':
		return fmt.Errorf("cannot use %s as a string", data)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = LooseString(n.String())
	}
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
