package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spendsense/spendsense/internal/model"
)

// Categories returns stored categories. When none are stored, the built-in
// default set is seeded, persisted, and returned. Seeding is not a user
// mutation and does not broadcast a change signal.
func (s *SQLiteStore) Categories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	raw, ok, err := s.getRecord(ctx, keyCategories)
	if err != nil {
		return nil, err
	}
	if !ok {
		defaults := model.DefaultCategories()
		if err := s.writeCategories(ctx, defaults); err != nil {
			return nil, err
		}
		slog.Info("seeded default categories", "count", len(defaults))
		return defaults, nil
	}

	var cats []model.Category
	if err := json.Unmarshal([]byte(raw), &cats); err != nil {
		slog.Warn("stored categories are corrupt, treating as empty", "error", err)
		return []model.Category{}, nil
	}
	if cats == nil {
		cats = []model.Category{}
	}
	return cats, nil
}

// SaveCategory upserts by id: an existing category is replaced in place, a
// new one is appended.
func (s *SQLiteStore) SaveCategory(ctx context.Context, cat model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := cat.Validate(); err != nil {
		return err
	}

	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range cats {
		if cats[i].ID == cat.ID {
			cats[i] = cat
			replaced = true
			break
		}
	}
	if !replaced {
		cats = append(cats, cat)
	}

	if err := s.writeCategories(ctx, cats); err != nil {
		return err
	}

	slog.Debug("saved category", "id", cat.ID, "name", cat.Name, "replaced", replaced)
	s.notifyChanged()
	return nil
}

// DeleteCategory removes the matching category; no-op if absent. Historical
// transactions keep their snapshot of the category's name and icon.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	kept := cats[:0]
	for _, c := range cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if err := s.writeCategories(ctx, kept); err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}

// CategoryByID returns the category with the given id, or common.ErrNotFound
// semantics via a nil result.
func (s *SQLiteStore) CategoryByID(ctx context.Context, id string) (*model.Category, error) {
	cats, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		if cats[i].ID == id {
			return &cats[i], nil
		}
	}
	return nil, nil
}

func (s *SQLiteStore) writeCategories(ctx context.Context, cats []model.Category) error {
	data, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return s.putRecord(ctx, keyCategories, string(data))
}
