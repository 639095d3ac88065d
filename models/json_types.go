package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is stored as a JSON array in a text column so the same model
// works on MySQL and SQLite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Int64List holds referenced ids (e.g. service ids on a tech report).
type Int64List []int64

func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		l = Int64List{}
	}
	return json.Marshal(l)
}

func (l *Int64List) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// UsedPart is one entry of a tech report's used-parts list.
type UsedPart struct {
	PartID   uint `json:"part_id"`
	Quantity int  `json:"quantity"`
}

// UnmarshalJSON accepts a bare part id, or an object carrying part_id (or the
// legacy partId key) with an optional quantity. Quantity defaults to 1 when
// the field is absent.
func (p *UsedPart) UnmarshalJSON(data []byte) error {
	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		p.PartID = id
		p.Quantity = 1
		return nil
	}

	var obj struct {
		PartID       *uint `json:"part_id"`
		LegacyPartID *uint `json:"partId"`
		Quantity     *int  `json:"quantity"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	switch {
	case obj.PartID != nil:
		p.PartID = *obj.PartID
	case obj.LegacyPartID != nil:
		p.PartID = *obj.LegacyPartID
	}

	if obj.Quantity != nil {
		p.Quantity = *obj.Quantity
	} else {
		p.Quantity = 1
	}
	return nil
}

type UsedPartList []UsedPart

func (l UsedPartList) Value() (driver.Value, error) {
	if l == nil {
		l = UsedPartList{}
	}
	return json.Marshal(l)
}

func (l *UsedPartList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", value)
	}
}
