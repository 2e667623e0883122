// Package service contains the business logic for the cruise packing API.
// Services validate inputs, apply defaults, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hmdeck/cruise-packing/internal/domain"
	"github.com/hmdeck/cruise-packing/internal/repo"
)

// ItemParams is one item as supplied by the client. Optional fields are
// pointers so "absent" is distinguishable from a zero value; absent fields
// take the documented defaults (checked=false, quantity=1, isCustom=false).
type ItemParams struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory *string `json:"subcategory"`
	Checked     *bool   `json:"checked"`
	Quantity    *int    `json:"quantity"`
	IsCustom    *bool   `json:"isCustom"`
}

// CreateListParams is the payload for creating a list. Name and Items are
// required; all trip descriptors are optional and stored as explicit nulls
// when absent.
type CreateListParams struct {
	Name          string                `json:"name"`
	CruiseName    *string               `json:"cruiseName"`
	DepartureDate *string               `json:"departureDate"`
	CruiseLength  *string               `json:"cruiseLength"`
	Destinations  *string               `json:"destinations"`
	CabinType     *string               `json:"cabinType"`
	Weather       *string               `json:"weather"`
	Items         map[string]ItemParams `json:"items"`
	Notes         *string               `json:"notes"`
}

// UpdateListParams is the payload for a partial update. Every field is
// optional; a nil field is left untouched. Items, when present, replaces
// the entire item map — the client always sends the complete item set on
// save, so there is deliberately no per-item merge.
type UpdateListParams struct {
	Name          *string               `json:"name"`
	CruiseName    *string               `json:"cruiseName"`
	DepartureDate *string               `json:"departureDate"`
	CruiseLength  *string               `json:"cruiseLength"`
	Destinations  *string               `json:"destinations"`
	CabinType     *string               `json:"cabinType"`
	Weather       *string               `json:"weather"`
	Items         map[string]ItemParams `json:"items"`
	Notes         *string               `json:"notes"`
}

// ListService implements business logic for PackingList operations.
type ListService struct {
	repo repo.ListRepo
}

// NewListService constructs a ListService backed by the provided ListRepo.
func NewListService(r repo.ListRepo) *ListService {
	return &ListService{repo: r}
}

// Create validates and persists a new list.
// Returns a *domain.ValidationError (matching domain.ErrValidation) that
// enumerates every failing field when the payload is invalid.
func (s *ListService) Create(ctx context.Context, params CreateListParams) (domain.PackingList, error) {
	var fields []domain.FieldError
	if strings.TrimSpace(params.Name) == "" {
		fields = append(fields, domain.FieldError{Field: "name", Reason: "is required"})
	}
	if params.Items == nil {
		fields = append(fields, domain.FieldError{Field: "items", Reason: "is required"})
	} else {
		fields = append(fields, validateItems(params.Items)...)
	}
	if len(fields) > 0 {
		return domain.PackingList{}, &domain.ValidationError{Fields: fields}
	}

	list := domain.PackingList{
		Name:          params.Name,
		CruiseName:    params.CruiseName,
		DepartureDate: params.DepartureDate,
		CruiseLength:  params.CruiseLength,
		Destinations:  params.Destinations,
		CabinType:     params.CabinType,
		Weather:       params.Weather,
		Items:         buildItems(params.Items),
		Notes:         params.Notes,
	}

	result, err := s.repo.Create(ctx, list)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.ListService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single list by id.
func (s *ListService) GetByID(ctx context.Context, id string) (domain.PackingList, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.ListService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all lists. Always returns a non-nil slice so callers can
// safely range over it and the JSON response is [] rather than null.
func (s *ListService) List(ctx context.Context) ([]domain.PackingList, error) {
	lists, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ListService.List: %w", err)
	}
	if lists == nil {
		return []domain.PackingList{}, nil
	}
	return lists, nil
}

// Update validates the partial payload and applies it to an existing list.
// An empty payload is valid and bumps only updated_at — the client's
// auto-save timer sends unchanged payloads and must stay idempotent.
func (s *ListService) Update(ctx context.Context, id string, params UpdateListParams) (domain.PackingList, error) {
	var fields []domain.FieldError
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		fields = append(fields, domain.FieldError{Field: "name", Reason: "must not be empty"})
	}
	if params.Items != nil {
		fields = append(fields, validateItems(params.Items)...)
	}
	if len(fields) > 0 {
		return domain.PackingList{}, &domain.ValidationError{Fields: fields}
	}

	patch := domain.ListPatch{
		Name:          params.Name,
		CruiseName:    params.CruiseName,
		DepartureDate: params.DepartureDate,
		CruiseLength:  params.CruiseLength,
		Destinations:  params.Destinations,
		CabinType:     params.CabinType,
		Weather:       params.Weather,
		Notes:         params.Notes,
	}
	if params.Items != nil {
		patch.Items = buildItems(params.Items)
	}

	result, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.ListService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a list by id.
func (s *ListService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ListService.Delete: %w", err)
	}
	return nil
}

// validateItems checks every item in the map and reports all failures.
// Keys are visited in sorted order so the error output is deterministic.
func validateItems(items map[string]ItemParams) []domain.FieldError {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []domain.FieldError
	for _, k := range keys {
		item := items[k]
		path := "items." + k
		if strings.TrimSpace(item.ID) == "" {
			fields = append(fields, domain.FieldError{Field: path + ".id", Reason: "is required"})
		}
		if strings.TrimSpace(item.Name) == "" {
			fields = append(fields, domain.FieldError{Field: path + ".name", Reason: "is required"})
		}
		if strings.TrimSpace(item.Category) == "" {
			fields = append(fields, domain.FieldError{Field: path + ".category", Reason: "is required"})
		}
		if item.Quantity != nil && *item.Quantity < 0 {
			fields = append(fields, domain.FieldError{Field: path + ".quantity", Reason: "must be >= 0"})
		}
	}
	return fields
}

// buildItems converts validated item params into domain items, applying the
// documented defaults for absent fields.
func buildItems(items map[string]ItemParams) map[string]domain.PackingItem {
	out := make(map[string]domain.PackingItem, len(items))
	for k, p := range items {
		item := domain.PackingItem{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Quantity: 1,
		}
		if p.Subcategory != nil {
			item.Subcategory = *p.Subcategory
		}
		if p.Checked != nil {
			item.Checked = *p.Checked
		}
		if p.Quantity != nil {
			item.Quantity = *p.Quantity
		}
		if p.IsCustom != nil {
			item.IsCustom = *p.IsCustom
		}
		out[k] = item
	}
	return out
}
