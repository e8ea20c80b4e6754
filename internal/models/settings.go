package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

type DashboardColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// UserSettings is stored per user. Absent stored values fall back to the
// defaults; reads never fail because a key was never written.
type UserSettings struct {
	Theme           Theme            `json:"theme"`
	FontSize        FontSize         `json:"font_size"`
	Notifications   bool             `json:"notifications"`
	DefaultCategory TaskCategory     `json:"default_category"`
	PrimaryColor    string           `json:"primary_color,omitempty"`
	DashboardColors *DashboardColors `json:"dashboard_colors,omitempty"`
}

type GlobalSettings struct {
	DefaultTheme          Theme    `json:"default_theme"`
	DefaultFontSize       FontSize `json:"default_font_size"`
	DefaultPrimaryColor   string   `json:"default_primary_color"`
	DefaultSecondaryColor string   `json:"default_secondary_color"`
	EmailNotifications    bool     `json:"email_notifications"`
	RegistrationEnabled   bool     `json:"registration_enabled"`
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:           ThemeLight,
		FontSize:        FontMedium,
		Notifications:   true,
		DefaultCategory: CategoryTask,
		PrimaryColor:    "#4A90E2",
		DashboardColors: &DashboardColors{
			Primary:   "#4A90E2",
			Secondary: "#50E3C2",
		},
	}
}

func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		DefaultTheme:          ThemeLight,
		DefaultFontSize:       FontMedium,
		DefaultPrimaryColor:   "#4A90E2",
		DefaultSecondaryColor: "#50E3C2",
		EmailNotifications:    true,
		RegistrationEnabled:   true,
	}
}
