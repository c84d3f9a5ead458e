package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "INR", s.CurrencyCode)
	assert.Equal(t, ThemeDark, s.Theme)
	assert.Equal(t, float64(20000), s.MonthlyBudget)
	assert.Equal(t, float64(5000), s.SavingsGoal)
	assert.Equal(t, "User", s.Profile.Name)
	assert.Equal(t, "@spendsense", s.Profile.Username)
	assert.True(t, s.Notifications.Enabled)
	assert.Equal(t, "20:00", s.Notifications.DailyTime)
	assert.Equal(t, float64(90), s.Notifications.BudgetThreshold)
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name              string
		preference        Theme
		systemPrefersDark bool
		want              Theme
	}{
		{"explicit dark", ThemeDark, false, ThemeDark},
		{"explicit light", ThemeLight, true, ThemeLight},
		{"system prefers dark", ThemeSystem, true, ThemeDark},
		{"system prefers light", ThemeSystem, false, ThemeLight},
		{"unknown preference follows system", Theme("sepia"), true, ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTheme(tt.preference, tt.systemPrefersDark))
		})
	}
}
