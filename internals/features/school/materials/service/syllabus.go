// file: internals/features/school/materials/service/syllabus.go
package service

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// UnitFile is one per-unit entry inside a syllabus document.
type UnitFile struct {
	Unit      int    `json:"unit"`
	FileURL   string `json:"file_url"`
	ObjectKey string `json:"object_key"`
	Mime      string `json:"mime,omitempty"`
}

func DecodeUnits(raw datatypes.JSON) ([]UnitFile, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var units []UnitFile
	if err := json.Unmarshal(raw, &units); err != nil {
		return nil, fmt.Errorf("decode syllabus units: %w", err)
	}
	return units, nil
}

func EncodeUnits(units []UnitFile) (datatypes.JSON, error) {
	b, err := json.Marshal(units)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// MergeUnitFile replaces the entry for the same unit or appends a new one.
// Second return reports whether an existing entry was replaced (its old file
// must then be deleted from the object store).
func MergeUnitFile(units []UnitFile, entry UnitFile) ([]UnitFile, *UnitFile) {
	for i, u := range units {
		if u.Unit == entry.Unit {
			old := u
			units[i] = entry
			return units, &old
		}
	}
	return append(units, entry), nil
}

// RemoveUnitFile drops the entry for unit. Returns the remaining list, the
// removed entry (nil when the unit was absent), and whether the list is now
// empty — the caller deletes the whole syllabus document in that case.
func RemoveUnitFile(units []UnitFile, unit int) ([]UnitFile, *UnitFile, bool) {
	for i, u := range units {
		if u.Unit == unit {
			removed := u
			out := append(units[:i:i], units[i+1:]...)
			return out, &removed, len(out) == 0
		}
	}
	return units, nil, len(units) == 0
}
