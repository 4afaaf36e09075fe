// file: internals/features/school/materials/service/syllabus_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUnitFileAppendsNewUnit(t *testing.T) {
	units := []UnitFile{{Unit: 1, FileURL: "u1", ObjectKey: "k1"}}

	out, old := MergeUnitFile(units, UnitFile{Unit: 2, FileURL: "u2", ObjectKey: "k2"})
	require.Len(t, out, 2)
	assert.Nil(t, old)
	assert.Equal(t, 2, out[1].Unit)
}

func TestMergeUnitFileReplacesSameUnit(t *testing.T) {
	units := []UnitFile{
		{Unit: 1, FileURL: "u1", ObjectKey: "k1"},
		{Unit: 2, FileURL: "u2", ObjectKey: "k2"},
	}

	out, old := MergeUnitFile(units, UnitFile{Unit: 2, FileURL: "u2b", ObjectKey: "k2b"})
	require.Len(t, out, 2)
	require.NotNil(t, old)
	assert.Equal(t, "k2", old.ObjectKey)
	assert.Equal(t, "k2b", out[1].ObjectKey)
}

func TestRemoveUnitFile(t *testing.T) {
	units := []UnitFile{
		{Unit: 1, ObjectKey: "k1"},
		{Unit: 2, ObjectKey: "k2"},
	}

	out, removed, empty := RemoveUnitFile(units, 1)
	require.NotNil(t, removed)
	assert.Equal(t, "k1", removed.ObjectKey)
	assert.False(t, empty)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Unit)

	out, removed, empty = RemoveUnitFile(out, 2)
	require.NotNil(t, removed)
	assert.True(t, empty)
	assert.Empty(t, out)
}

func TestRemoveUnitFileAbsentUnit(t *testing.T) {
	units := []UnitFile{{Unit: 1, ObjectKey: "k1"}}

	out, removed, empty := RemoveUnitFile(units, 9)
	assert.Nil(t, removed)
	assert.False(t, empty)
	assert.Len(t, out, 1)
}

func TestEncodeDecodeUnitsRoundTrip(t *testing.T) {
	units := []UnitFile{
		{Unit: 1, FileURL: "https://cdn.example/a.pdf", ObjectKey: "syllabus/a.pdf", Mime: "application/pdf"},
		{Unit: 3, FileURL: "https://cdn.example/c.pdf", ObjectKey: "syllabus/c.pdf"},
	}

	raw, err := EncodeUnits(units)
	require.NoError(t, err)

	got, err := DecodeUnits(raw)
	require.NoError(t, err)
	assert.Equal(t, units, got)
}

func TestDecodeUnitsEmpty(t *testing.T) {
	got, err := DecodeUnits(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
