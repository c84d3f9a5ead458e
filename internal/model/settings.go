package model

// Theme is the user's display theme preference.
type Theme string

const (
	// ThemeDark renders the dark palette.
	ThemeDark Theme = "dark"
	// ThemeLight renders the light palette.
	ThemeLight Theme = "light"
	// ThemeSystem follows the operating system preference.
	ThemeSystem Theme = "system"
)

// UserProfile holds identity fields. UID and Email are set only when an
// external auth layer has linked an account.
type UserProfile struct {
	UID         string `json:"uid,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	AvatarID    string `json:"avatarId"`
	AvatarImage string `json:"avatarImage,omitempty"`
}

// NotificationPreferences bundles reminder toggles and times. Scheduling
// itself is handled outside the core; the core only persists the record.
type NotificationPreferences struct {
	Enabled         bool    `json:"enabled"`
	DailyReminder   bool    `json:"dailyReminder"`
	DailyTime       string  `json:"dailyTime"`
	RandomNudges    bool    `json:"randomNudges"`
	WeeklySummary   bool    `json:"weeklySummary"`
	WeeklyDay       int     `json:"weeklyDay"`
	WeeklyTime      string  `json:"weeklyTime"`
	BudgetAlert     bool    `json:"budgetAlert"`
	BudgetThreshold float64 `json:"budgetThreshold"`
	CriticalAlerts  bool    `json:"criticalAlerts"`
}

// Settings is the single process-wide configuration record. MonthlyBudget
// and SavingsGoal are stored in base currency.
type Settings struct {
	CurrencyCode  string                  `json:"currencyCode"`
	Theme         Theme                   `json:"theme"`
	MonthlyBudget float64                 `json:"monthlyBudget"`
	SavingsGoal   float64                 `json:"savingsGoal"`
	Profile       UserProfile             `json:"profile"`
	Notifications NotificationPreferences `json:"notifications"`
}

// DefaultSettings returns the settings record used on first run and as the
// merge base for partially stored records.
func DefaultSettings() Settings {
	return Settings{
		CurrencyCode:  "INR",
		Theme:         ThemeDark,
		MonthlyBudget: 20000,
		SavingsGoal:   5000,
		Profile: UserProfile{
			Name:     "User",
			Username: "@spendsense",
			AvatarID: "😎",
		},
		Notifications: NotificationPreferences{
			Enabled:         true,
			DailyReminder:   true,
			DailyTime:       "20:00",
			RandomNudges:    false,
			WeeklySummary:   true,
			WeeklyDay:       0,
			WeeklyTime:      "09:00",
			BudgetAlert:     true,
			BudgetThreshold: 90,
			CriticalAlerts:  false,
		},
	}
}

// Avatars lists the preset avatar choices referenced by UserProfile.AvatarID.
var Avatars = []string{"😎", "👻", "🤖", "🐱", "🐶", "🦊", "🐼", "🐨", "🦁", "🐯"}

// ResolveTheme maps a theme preference to the concrete theme to apply.
// ThemeSystem resolves using the host's dark-mode preference.
func ResolveTheme(preference Theme, systemPrefersDark bool) Theme {
	switch preference {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		if systemPrefersDark {
			return ThemeDark
		}
		return ThemeLight
	}
}
