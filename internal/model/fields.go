package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// FieldKind discriminates the scalar kinds a dynamic attribute may hold.
type FieldKind int

const (
	FieldNumber FieldKind = iota
	FieldString
	FieldBool
)

// FieldValue is a tagged union over the scalar kinds allowed in category and
// item attribute maps. Anything else (arrays, objects, null) is rejected at
// unmarshal time so bad catalog data fails loudly instead of propagating.
type FieldValue struct {
	Kind FieldKind
	Num  float64
	Str  string
	Bool bool
}

func NumberField(v float64) FieldValue { return FieldValue{Kind: FieldNumber, Num: v} }
func StringField(v string) FieldValue  { return FieldValue{Kind: FieldString, Str: v} }
func BoolField(v bool) FieldValue      { return FieldValue{Kind: FieldBool, Bool: v} }

func (f FieldValue) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FieldNumber:
		return json.Marshal(f.Num)
	case FieldString:
		return json.Marshal(f.Str)
	case FieldBool:
		return json.Marshal(f.Bool)
	default:
		return nil, fmt.Errorf("field value: unknown kind %d", f.Kind)
	}
}

func (f *FieldValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*f = NumberField(v)
	case string:
		*f = StringField(v)
	case bool:
		*f = BoolField(v)
	default:
		return fmt.Errorf("field value: unsupported type %T", raw)
	}
	return nil
}

// FieldMap holds category-specific attributes (e.g. "inner diameter" for
// tubes) keyed by name. Stored as a JSONB column.
type FieldMap map[string]FieldValue

func (m FieldMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *FieldMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("field map: unsupported scan source")
	}
	return json.Unmarshal(data, m)
}

// Number returns the numeric attribute named key, coercing a numeric string
// when the catalog stored it as text.
func (m FieldMap) Number(key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch v.Kind {
	case FieldNumber:
		return v.Num, true
	case FieldString:
		var f float64
		if _, err := fmt.Sscanf(v.Str, "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}
