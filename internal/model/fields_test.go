package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue_UnmarshalScalars(t *testing.T) {
	var m FieldMap
	require.NoError(t, json.Unmarshal([]byte(`{"diameter": 20, "grade": "S235", "certified": true}`), &m))

	assert.Equal(t, NumberField(20), m["diameter"])
	assert.Equal(t, StringField("S235"), m["grade"])
	assert.Equal(t, BoolField(true), m["certified"])
}

func TestFieldValue_RejectsNonScalars(t *testing.T) {
	var m FieldMap
	assert.Error(t, json.Unmarshal([]byte(`{"sizes": [1, 2]}`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"nested": {"a": 1}}`), &m))
	assert.Error(t, json.Unmarshal([]byte(`{"missing": null}`), &m))
}

func TestFieldValue_RoundTrip(t *testing.T) {
	m := FieldMap{"diameter": NumberField(20), "grade": StringField("S235")}
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back FieldMap
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)
}

func TestFieldMap_NumberCoercesStrings(t *testing.T) {
	m := FieldMap{
		"diameter": NumberField(20),
		"wall":     StringField("2.5"),
		"grade":    StringField("S235"),
	}

	v, ok := m.Number("diameter")
	assert.True(t, ok)
	assert.Equal(t, 20.0, v)

	v, ok = m.Number("wall")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = m.Number("grade")
	assert.False(t, ok)

	_, ok = m.Number("absent")
	assert.False(t, ok)
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{StatusCreated, StatusConfirmed, StatusReady, StatusDispatched, StatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("Pending").Valid())
	assert.False(t, OrderStatus("").Valid())
}
