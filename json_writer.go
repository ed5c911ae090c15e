package clientbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// recordWriter builds a JSON object whose keys keep the order they were
// written in. The first error sticks and is returned by MarshalJSON.
type recordWriter struct {
	fields []byte
	err    error
}

func (w *recordWriter) next() {
	if len(w.fields) > 0 {
		w.fields = append(w.fields, ',')
	}
}

// Field writes key with the JSON encoding of value.
func (w *recordWriter) Field(key string, value any) *recordWriter {
	if w.err != nil {
		return w
	}
	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode field %q: %w", key, err)
		return w
	}
	k, _ := json.Marshal(key)
	w.next()
	w.fields = append(w.fields, k...)
	w.fields = append(w.fields, ':')
	w.fields = append(w.fields, v...)
	return w
}

// OmitEmpty writes key only if value is neither zero nor an empty slice.
func (w *recordWriter) OmitEmpty(key string, value any) *recordWriter {
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() || (v.Kind() == reflect.Slice && v.Len() == 0) {
		return w
	}
	return w.Field(key, value)
}

// Inline writes the fields of value, which must encode as a JSON object.
func (w *recordWriter) Inline(value any) *recordWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %T: %w", value, err)
		return w
	}
	data = bytes.TrimSpace(data)
	if len(data) < 2 || data[0] != '{' || data[len(data)-1] != '}' {
		w.err = fmt.Errorf("cannot inline %s: not a JSON object", data)
		return w
	}
	if inner := bytes.TrimSpace(data[1 : len(data)-1]); len(inner) > 0 {
		w.next()
		w.fields = append(w.fields, inner...)
	}
	return w
}

// MarshalJSON returns the object built so far.
func (w *recordWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, len(w.fields)+2)
	out = append(out, '{')
	out = append(out, w.fields...)
	return append(out, '}'), nil
}
