package models

import (
	"encoding/json"
	"strings"
)

type UnitType struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Abbreviation string `json:"abbreviation"`
	DisplayOrder int    `json:"display_order"`
}

type UnitKind int

const (
	UnitCatalog UnitKind = iota
	UnitRatioPart
)

// RatioPartUnit is the stored literal for ratio-based recipes.
const RatioPartUnit = "parts"

// UnitRef is either a reference into the unit type catalog or a ratio part.
// Ratio parts are relative proportions and never carry a cost.
type UnitRef struct {
	Kind UnitKind
	Name string
}

func CatalogUnit(name string) UnitRef {
	return UnitRef{Kind: UnitCatalog, Name: name}
}

func RatioPart() UnitRef {
	return UnitRef{Kind: UnitRatioPart, Name: RatioPartUnit}
}

func ParseUnitRef(raw string) UnitRef {
	name := strings.TrimSpace(raw)
	if strings.EqualFold(name, RatioPartUnit) {
		return RatioPart()
	}
	return CatalogUnit(name)
}

func (u UnitRef) IsRatioPart() bool {
	return u.Kind == UnitRatioPart
}

func (u UnitRef) String() string {
	if u.IsRatioPart() {
		return RatioPartUnit
	}
	return u.Name
}

func (u UnitRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *UnitRef) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = ParseUnitRef(raw)
	return nil
}
