package main

import (
	"strings"
	"testing"
	"time"

	"github.com/spendsense/spendsense/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFindCategory(t *testing.T) {
	cats := []model.Category{
		{ID: "cat_1", Name: "Food"},
		{ID: "cat_2", Name: "Transport"},
		{ID: "cat_3", Name: "cat_2"}, // name collides with another id
	}

	tests := []struct {
		name     string
		idOrName string
		wantID   string
	}{
		{name: "by id", idOrName: "cat_1", wantID: "cat_1"},
		{name: "by name", idOrName: "Transport", wantID: "cat_2"},
		{name: "id wins over name", idOrName: "cat_2", wantID: "cat_2"},
		{name: "no match", idOrName: "Rent", wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findCategory(cats, tt.idOrName)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestRenderBar(t *testing.T) {
	full := renderBar(100, false)
	assert.Equal(t, progressBarWidth, strings.Count(full, "█"))
	assert.Equal(t, 0, strings.Count(full, "░"))

	empty := renderBar(0, false)
	assert.Equal(t, 0, strings.Count(empty, "█"))
	assert.Equal(t, progressBarWidth, strings.Count(empty, "░"))

	// Values past the ends clamp instead of panicking.
	over := renderBar(250, true)
	assert.Equal(t, progressBarWidth, strings.Count(over, "█"))
	negative := renderBar(-10, false)
	assert.Equal(t, progressBarWidth, strings.Count(negative, "░"))
}

func TestFlagDefaults(t *testing.T) {
	_, err := time.Parse(model.DateLayout, todayDate())
	assert.NoError(t, err)

	_, err = time.Parse(model.TimeLayout, nowTime())
	assert.NoError(t, err)
}
