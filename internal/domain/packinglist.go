// Package domain contains the core data types for the cruise packing API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// PackingList is the aggregate root: trip metadata plus the full item
// collection, persisted and mutated as one unit.
//
// Optional trip descriptors are pointers so that an unset field serializes
// as an explicit JSON null rather than being omitted — the client relies on
// every column being present in the payload.
type PackingList struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	CruiseName    *string                `json:"cruiseName"`
	DepartureDate *string                `json:"departureDate"`
	CruiseLength  *string                `json:"cruiseLength"`
	Destinations  *string                `json:"destinations"`
	CabinType     *string                `json:"cabinType"`
	Weather       *string                `json:"weather"`
	Items         map[string]PackingItem `json:"items"`
	Notes         *string                `json:"notes"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// ListPatch is a partial update to a PackingList. Nil fields are left
// untouched; a non-nil Items replaces the entire item map (no per-item
// merge — callers send the complete desired item set).
type ListPatch struct {
	Name          *string
	CruiseName    *string
	DepartureDate *string
	CruiseLength  *string
	Destinations  *string
	CabinType     *string
	Weather       *string
	Items         map[string]PackingItem
	Notes         *string
}

// Apply merges the patch into list field-by-field. It does not touch
// timestamps — the store owns updated_at.
func (p ListPatch) Apply(list *PackingList) {
	if p.Name != nil {
		list.Name = *p.Name
	}
	if p.CruiseName != nil {
		list.CruiseName = p.CruiseName
	}
	if p.DepartureDate != nil {
		list.DepartureDate = p.DepartureDate
	}
	if p.CruiseLength != nil {
		list.CruiseLength = p.CruiseLength
	}
	if p.Destinations != nil {
		list.Destinations = p.Destinations
	}
	if p.CabinType != nil {
		list.CabinType = p.CabinType
	}
	if p.Weather != nil {
		list.Weather = p.Weather
	}
	if p.Items != nil {
		list.Items = p.Items
	}
	if p.Notes != nil {
		list.Notes = p.Notes
	}
}
