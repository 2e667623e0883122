package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hmdeck/cruise-packing/internal/domain"
)

// pgListRepo is the Postgres implementation of ListRepo.
// The items map is stored as a JSONB column; the whole aggregate lives in
// one row, so every operation is a single statement and therefore atomic.
type pgListRepo struct {
	db db
}

// NewListRepo constructs a ListRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewListRepo(db db) ListRepo {
	return &pgListRepo{db: db}
}

const listColumns = `id, name, cruise_name, departure_date, cruise_length,
		destinations, cabin_type, weather, items, notes, created_at, updated_at`

// Create inserts a new list row and returns the full persisted record.
// id, created_at, and updated_at come from column defaults.
func (r *pgListRepo) Create(ctx context.Context, list domain.PackingList) (domain.PackingList, error) {
	const q = `
		INSERT INTO packing_lists (name, cruise_name, departure_date, cruise_length,
			destinations, cabin_type, weather, items, notes)
		VALUES (@name, @cruise_name, @departure_date, @cruise_length,
			@destinations, @cabin_type, @weather, @items::jsonb, @notes)
		RETURNING ` + listColumns

	items, err := json.Marshal(list.Items)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("repo.ListRepo.Create: marshal items: %w", err)
	}

	args := pgx.NamedArgs{
		"name":           list.Name,
		"cruise_name":    list.CruiseName, // nil becomes NULL
		"departure_date": list.DepartureDate,
		"cruise_length":  list.CruiseLength,
		"destinations":   list.Destinations,
		"cabin_type":     list.CabinType,
		"weather":        list.Weather,
		"items":          string(items),
		"notes":          list.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanList(row)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("repo.ListRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a list by primary key.
func (r *pgListRepo) GetByID(ctx context.Context, id string) (domain.PackingList, error) {
	const q = `
		SELECT ` + listColumns + `
		FROM packing_lists
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanList(row)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("repo.ListRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all lists ordered by creation time (oldest first).
func (r *pgListRepo) List(ctx context.Context) ([]domain.PackingList, error) {
	const q = `
		SELECT ` + listColumns + `
		FROM packing_lists
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ListRepo.List: %w", err)
	}
	defer rows.Close()

	var lists []domain.PackingList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ListRepo.List: scan: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ListRepo.List: rows: %w", err)
	}

	return lists, nil
}

// Update merges the patch into the row in a single UPDATE statement:
// COALESCE keeps the current value for every patch field passed as NULL, so
// the read-modify-write happens inside Postgres and concurrent updates to
// the same id serialize on the row lock (last writer's merge wins).
func (r *pgListRepo) Update(ctx context.Context, id string, patch domain.ListPatch) (domain.PackingList, error) {
	const q = `
		UPDATE packing_lists
		SET name           = COALESCE(@name, name),
		    cruise_name    = COALESCE(@cruise_name, cruise_name),
		    departure_date = COALESCE(@departure_date, departure_date),
		    cruise_length  = COALESCE(@cruise_length, cruise_length),
		    destinations   = COALESCE(@destinations, destinations),
		    cabin_type     = COALESCE(@cabin_type, cabin_type),
		    weather        = COALESCE(@weather, weather),
		    items          = COALESCE(@items::jsonb, items),
		    notes          = COALESCE(@notes, notes),
		    updated_at     = clock_timestamp()
		WHERE id = @id
		RETURNING ` + listColumns

	// A nil Items means "not supplied"; a non-nil map (even empty) replaces
	// the whole column. The distinction is carried by the NULL-ness of @items.
	var items *string
	if patch.Items != nil {
		b, err := json.Marshal(patch.Items)
		if err != nil {
			return domain.PackingList{}, fmt.Errorf("repo.ListRepo.Update: marshal items: %w", err)
		}
		s := string(b)
		items = &s
	}

	args := pgx.NamedArgs{
		"id":             id,
		"name":           patch.Name,
		"cruise_name":    patch.CruiseName,
		"departure_date": patch.DepartureDate,
		"cruise_length":  patch.CruiseLength,
		"destinations":   patch.Destinations,
		"cabin_type":     patch.CabinType,
		"weather":        patch.Weather,
		"items":          items,
		"notes":          patch.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanList(row)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("repo.ListRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a list by primary key.
func (r *pgListRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM packing_lists WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ListRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ListRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanList maps a single database row into a domain.PackingList.
// Nullable text columns scan straight into the *string fields; the JSONB
// items column is unmarshalled from its raw bytes.
func scanList(s scanner) (domain.PackingList, error) {
	var (
		l     domain.PackingList
		items []byte
	)

	err := s.Scan(&l.ID, &l.Name, &l.CruiseName, &l.DepartureDate, &l.CruiseLength,
		&l.Destinations, &l.CabinType, &l.Weather, &items, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PackingList{}, domain.ErrNotFound
		}
		return domain.PackingList{}, err
	}

	if err := json.Unmarshal(items, &l.Items); err != nil {
		return domain.PackingList{}, fmt.Errorf("unmarshal items: %w", err)
	}
	if l.Items == nil {
		l.Items = map[string]domain.PackingItem{}
	}

	return l, nil
}
