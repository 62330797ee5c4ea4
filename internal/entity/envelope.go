package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// envelope carries the kind tag next to the payload so decoding can pick the
// concrete kind before looking at the data.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type validator interface {
	Validate() error
}

func (e *StaticEntity) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(string(e.Kind), &e.Data)
}

func (e *StaticEntity) UnmarshalJSON(b []byte) error {
	env, err := readEnvelope(b)
	if err != nil {
		return err
	}
	return e.decode(env)
}

func (e *StaticEntity) decode(env envelope) error {
	kind := StaticKind(env.Type)
	if _, ok := LookupStatic(kind); !ok {
		if _, ok := LookupDynamic(DynamicKind(env.Type)); ok {
			return fmt.Errorf("%w: %q is a dynamic kind", ErrMalformedEntityData, env.Type)
		}
		return fmt.Errorf("%w: %q", ErrUnknownEntityKind, env.Type)
	}

	var data StaticData
	if err := decodeData(env.Data, &data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedEntityData, kind, err)
	}

	*e = StaticEntity{Kind: kind, Data: data}
	return nil
}

func (e *DynamicEntity) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(string(e.Kind), &e.Data)
}

func (e *DynamicEntity) UnmarshalJSON(b []byte) error {
	env, err := readEnvelope(b)
	if err != nil {
		return err
	}
	return e.decode(env)
}

func (e *DynamicEntity) decode(env envelope) error {
	kind := DynamicKind(env.Type)
	if _, ok := LookupDynamic(kind); !ok {
		if _, ok := LookupStatic(StaticKind(env.Type)); ok {
			return fmt.Errorf("%w: %q is a static kind", ErrMalformedEntityData, env.Type)
		}
		return fmt.Errorf("%w: %q", ErrUnknownEntityKind, env.Type)
	}

	var data DynamicData
	if err := decodeData(env.Data, &data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedEntityData, kind, err)
	}

	*e = DynamicEntity{Kind: kind, Data: data}
	return nil
}

// variantEnvelope is the wire form of an Entity when the base kind must be
// stated explicitly, as it is for the cursor.
type variantEnvelope struct {
	Type  Variant         `json:"type"`
	Value json.RawMessage `json:"value"`
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	var value []byte
	var err error
	if e.Dynamic != nil {
		value, err = e.Dynamic.MarshalJSON()
	} else if e.Static != nil {
		value, err = e.Static.MarshalJSON()
	} else {
		return nil, fmt.Errorf("entity holds neither a static nor a dynamic payload")
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(variantEnvelope{Type: e.Variant(), Value: value})
}

func (e *Entity) UnmarshalJSON(b []byte) error {
	var env variantEnvelope
	if err := DecodeStrict(b, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEntityData, err)
	}

	switch env.Type {
	case VariantStatic:
		s := &StaticEntity{}
		if err := s.UnmarshalJSON(env.Value); err != nil {
			return err
		}
		*e = Entity{Static: s}
	case VariantDynamic:
		d := &DynamicEntity{}
		if err := d.UnmarshalJSON(env.Value); err != nil {
			return err
		}
		*e = Entity{Dynamic: d}
	default:
		return fmt.Errorf("%w: variant %q", ErrUnknownEntityKind, env.Type)
	}
	return nil
}

// MarshalTagged encodes e as a bare {type, data} envelope.
func MarshalTagged(e *Entity) ([]byte, error) {
	if e.Dynamic != nil {
		return e.Dynamic.MarshalJSON()
	}
	if e.Static != nil {
		return e.Static.MarshalJSON()
	}
	return nil, fmt.Errorf("entity holds neither a static nor a dynamic payload")
}

// UnmarshalTagged decodes a bare {type, data} envelope, resolving the base
// kind from the tag alone.
func UnmarshalTagged(b []byte) (*Entity, error) {
	env, err := readEnvelope(b)
	if err != nil {
		return nil, err
	}

	if _, ok := LookupStatic(StaticKind(env.Type)); ok {
		s := &StaticEntity{}
		if err := s.decode(env); err != nil {
			return nil, err
		}
		return FromStatic(s), nil
	}

	if _, ok := LookupDynamic(DynamicKind(env.Type)); ok {
		d := &DynamicEntity{}
		if err := d.decode(env); err != nil {
			return nil, err
		}
		return FromDynamic(d), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, env.Type)
}

func marshalEnvelope(tag string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshalling %s data: %w", tag, err)
	}
	return json.Marshal(envelope{Type: tag, Data: raw})
}

func readEnvelope(b []byte) (envelope, error) {
	var env envelope
	if err := DecodeStrict(b, &env); err != nil {
		return envelope{}, fmt.Errorf("%w: %w", ErrMalformedEntityData, err)
	}
	if env.Type == "" {
		return envelope{}, fmt.Errorf("%w: type is required", ErrMalformedEntityData)
	}
	return env, nil
}

func decodeData(raw json.RawMessage, out validator) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("data is required")
	}
	if err := DecodeStrict(trimmed, out); err != nil {
		return err
	}
	return out.Validate()
}

// DecodeStrict decodes exactly one JSON value from b into out. Unknown
// fields and anything after the value are rejected.
func DecodeStrict(b []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}
