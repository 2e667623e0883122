package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmdeck/cruise-packing/internal/domain"
	"github.com/hmdeck/cruise-packing/internal/repo"
)

// listFixture returns a domain.PackingList with sensible defaults for tests.
// Callers override individual fields after calling this function.
func listFixture() domain.PackingList {
	cruise := "Island Hopper"
	return domain.PackingList{
		Name:       "Summer Cruise",
		CruiseName: &cruise,
		Items: map[string]domain.PackingItem{
			"passport": {ID: "passport", Name: "Passport", Category: "documents", Checked: true, Quantity: 1},
		},
	}
}

func TestMemoryRepo_Create(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	got, err := r.Create(ctx, listFixture())

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Summer Cruise", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt), "createdAt == updatedAt at creation")
}

func TestMemoryRepo_Create_UniqueIDs(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	a, err := r.Create(ctx, listFixture())
	require.NoError(t, err)
	b, err := r.Create(ctx, listFixture())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemoryRepo_GetAfterCreate(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, listFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewMemoryListRepo()

	_, err := r.GetByID(context.Background(), "never-created")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryRepo_List(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, listFixture())
	require.NoError(t, err)
	_, err = r.Create(ctx, listFixture())
	require.NoError(t, err)

	lists, err := r.List(ctx)

	require.NoError(t, err)
	assert.Len(t, lists, 2)
}

func TestMemoryRepo_Update_EmptyPatchBumpsOnlyUpdatedAt(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, listFixture())
	require.NoError(t, err)

	got, err := r.Update(ctx, created.ID, domain.ListPatch{})

	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt), "updatedAt must be strictly later")
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt), "createdAt is immutable")
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Items, got.Items)
}

func TestMemoryRepo_Update_MergesFields(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, listFixture())
	require.NoError(t, err)

	name := "Renamed"
	notes := "don't forget sunscreen"
	got, err := r.Update(ctx, created.ID, domain.ListPatch{Name: &name, Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	require.NotNil(t, got.Notes)
	assert.Equal(t, notes, *got.Notes)
	// Untouched fields survive the merge.
	require.NotNil(t, got.CruiseName)
	assert.Equal(t, "Island Hopper", *got.CruiseName)
}

func TestMemoryRepo_Update_ItemsReplaceWholeMap(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, listFixture())
	require.NoError(t, err)

	patch := domain.ListPatch{
		Items: map[string]domain.PackingItem{
			"camera": {ID: "camera", Name: "Camera", Category: "electronics", Quantity: 1},
		},
	}
	got, err := r.Update(ctx, created.ID, patch)

	require.NoError(t, err)
	assert.Len(t, got.Items, 1, "items map is replaced, not merged per item")
	_, hadOld := got.Items["passport"]
	assert.False(t, hadOld)
}

func TestMemoryRepo_Update_NotFoundDoesNotCreate(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	name := "ghost"
	_, err := r.Update(ctx, "never-created", domain.ListPatch{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)

	lists, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists, "no upsert on missing id")
}

func TestMemoryRepo_DeleteThenGet(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, listFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Second delete of the same id reports not found.
	assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestMemoryRepo_ReturnedAggregatesAreIsolated(t *testing.T) {
	r := repo.NewMemoryListRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, listFixture())
	require.NoError(t, err)

	// Mutating a returned items map must not leak into the store.
	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	got.Items["passport"] = domain.PackingItem{ID: "passport", Name: "tampered", Category: "documents"}

	fresh, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Passport", fresh.Items["passport"].Name)
}
