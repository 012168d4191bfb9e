package workout

import "sort"

// Customization is a per-equipment record of user additions and field
// overrides, keyed by the equipment id.
type Customization struct {
	EquipmentID       string             `json:"equipmentId"`
	CustomVariants    []string           `json:"customVariants,omitempty"`
	CustomAttachments []string           `json:"customAttachments,omitempty"`
	FieldOverrides    map[string]float64 `json:"fieldOverrides,omitempty"`
	UpdatedAt         int64              `json:"updatedAt"`
}

func (c *Customization) RecordID() string   { return c.EquipmentID }
func (c *Customization) LastUpdated() int64 { return c.UpdatedAt }

// Override keys recognized by Compose.
const (
	OverrideRestPeriodSec   = "restPeriodSec"
	OverrideWeightIncrement = "weightIncrement"
)

// Compose blends the base equipment catalog with per-equipment
// customizations. The base slice is never mutated; every returned
// element is a copy. Customizations for unknown equipment ids produce
// new custom catalog entries, appended after the base ones.
func Compose(base []Equipment, overrides map[string]*Customization) []Equipment {
	composed := make([]Equipment, 0, len(base))
	seen := make(map[string]bool, len(base))

	for _, eq := range base {
		seen[eq.ID] = true
		cust, ok := overrides[eq.ID]
		if !ok || cust == nil {
			composed = append(composed, eq)
			continue
		}

		merged := eq
		merged.Variants = append(append([]string(nil), eq.Variants...), cust.CustomVariants...)
		merged.Attachments = append(append([]string(nil), eq.Attachments...), cust.CustomAttachments...)
		if v, ok := cust.FieldOverrides[OverrideRestPeriodSec]; ok {
			merged.RestPeriodSec = int(v)
		}
		if v, ok := cust.FieldOverrides[OverrideWeightIncrement]; ok {
			merged.WeightIncrement = v
		}
		composed = append(composed, merged)
	}

	extraIDs := make([]string, 0)
	for id := range overrides {
		if !seen[id] && overrides[id] != nil {
			extraIDs = append(extraIDs, id)
		}
	}
	sort.Strings(extraIDs)

	for _, id := range extraIDs {
		cust := overrides[id]
		eq := Equipment{
			ID:          id,
			Name:        id,
			Variants:    append([]string(nil), cust.CustomVariants...),
			Attachments: append([]string(nil), cust.CustomAttachments...),
			Custom:      true,
		}
		if v, ok := cust.FieldOverrides[OverrideRestPeriodSec]; ok {
			eq.RestPeriodSec = int(v)
		}
		if v, ok := cust.FieldOverrides[OverrideWeightIncrement]; ok {
			eq.WeightIncrement = v
		}
		composed = append(composed, eq)
	}

	return composed
}
