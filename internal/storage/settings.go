package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spendsense/spendsense/internal/model"
)

// Settings returns the stored settings merged field-by-field with defaults,
// so a partial or legacy record never produces missing fields. A corrupt
// stored value falls back to full defaults; this read never fails for data
// reasons.
func (s *SQLiteStore) Settings(ctx context.Context) (model.Settings, error) {
	defaults := model.DefaultSettings()

	if err := validateContext(ctx); err != nil {
		return defaults, err
	}

	raw, ok, err := s.getRecord(ctx, keySettings)
	if err != nil {
		return defaults, err
	}
	if !ok {
		return defaults, nil
	}

	// Unmarshaling over the defaults-populated struct overrides only the
	// fields present in the stored JSON, including nested profile and
	// notification fields.
	merged := defaults
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		slog.Warn("stored settings are corrupt, using defaults", "error", err)
		return defaults, nil
	}
	return merged, nil
}

// SaveSettings persists the full settings record, overwriting the previous
// one. There is no partial-field persistence.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.putRecord(ctx, keySettings, string(data)); err != nil {
		return err
	}

	s.notifyChanged()
	return nil
}
