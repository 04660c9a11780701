package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DecodeJSON decodes a JSON array of objects, keeping each object's key
// order. Valid JSON that is not an array decodes to an empty Dataset.
// Array elements that are not objects become empty records.
func DecodeJSON(b []byte) (Dataset, error) {
	if !json.Valid(b) {
		return nil, errors.New("parse json: invalid document")
	}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	ds := Dataset{}
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse json record %d: %w", len(ds)+1, err)
		}
		rec, err := decodeObject(raw)
		if err != nil {
			return nil, fmt.Errorf("parse json record %d: %w", len(ds)+1, err)
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

func decodeObject(raw json.RawMessage) (Record, error) {
	var rec Record
	if len(raw) == 0 || raw[0] != '{' {
		return rec, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return rec, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rec, err
		}
		key, ok := tok.(string)
		if !ok {
			return rec, fmt.Errorf("unexpected object key %v", tok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return rec, fmt.Errorf("field %q: %w", key, err)
		}
		v, err := jsonScalar(val)
		if err != nil {
			return rec, fmt.Errorf("field %q: %w", key, err)
		}
		rec.Set(key, v)
	}
	return rec, nil
}

// jsonScalar maps a raw JSON value onto Value. Booleans and nested
// structures are kept as their JSON text.
func jsonScalar(raw json.RawMessage) (Value, error) {
	if len(raw) == 0 {
		return Value{}, nil
	}
	switch raw[0] {
	case 'n':
		return Null(), nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, err
		}
		return Text(s), nil
	case 't', 'f':
		return Text(string(raw)), nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return Value{}, err
		}
		return Text(buf.String()), nil
	default:
		f, err := json.Number(raw).Float64()
		if err != nil {
			// out-of-range literals keep their text; they never count as finite
			return Text(string(raw)), nil
		}
		return Number(f), nil
	}
}
