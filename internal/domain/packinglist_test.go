package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmdeck/cruise-packing/internal/domain"
)

func TestListPatch_Apply_NilFieldsLeaveListUntouched(t *testing.T) {
	cruise := "Island Hopper"
	list := domain.PackingList{
		Name:       "Original",
		CruiseName: &cruise,
		Items: map[string]domain.PackingItem{
			"passport": {ID: "passport", Name: "Passport", Category: "documents"},
		},
	}

	domain.ListPatch{}.Apply(&list)

	assert.Equal(t, "Original", list.Name)
	require.NotNil(t, list.CruiseName)
	assert.Equal(t, "Island Hopper", *list.CruiseName)
	assert.Len(t, list.Items, 1)
}

func TestListPatch_Apply_ItemsReplaceWholeMap(t *testing.T) {
	list := domain.PackingList{
		Items: map[string]domain.PackingItem{
			"passport": {ID: "passport", Name: "Passport", Category: "documents"},
			"camera":   {ID: "camera", Name: "Camera", Category: "electronics"},
		},
	}

	patch := domain.ListPatch{
		Items: map[string]domain.PackingItem{
			"sunhat": {ID: "sunhat", Name: "Sun Hat", Category: "additional"},
		},
	}
	patch.Apply(&list)

	assert.Len(t, list.Items, 1)
	_, ok := list.Items["passport"]
	assert.False(t, ok)
}

func TestPackingList_JSON_AbsentFieldsAreExplicitNulls(t *testing.T) {
	b, err := json.Marshal(domain.PackingList{Name: "Minimal"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	for _, key := range []string{"cruiseName", "departureDate", "cruiseLength", "destinations", "cabinType", "weather", "notes"} {
		v, present := raw[key]
		assert.True(t, present, "%s must be present", key)
		assert.Nil(t, v, "%s must be null when unset", key)
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "name", Reason: "is required"},
		{Field: "items.x.quantity", Reason: "must be >= 0"},
	}}

	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "name: is required")
	assert.Contains(t, err.Error(), "items.x.quantity: must be >= 0")
}
