package config

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type inkTheme struct {
	Theme string
}

func (m inkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch m.Theme {
	case "Dark":
		variant = theme.VariantDark
	case "Light":
		variant = theme.VariantLight
	}

	return theme.DefaultTheme().Color(name, variant)
}

func (m inkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m inkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m inkTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// ApplyAppConfig installs the configured theme on app.
func (c *Config) ApplyAppConfig(app fyne.App) {
	switch c.Theme {
	case "Dark", "Light":
		app.Settings().SetTheme(inkTheme{c.Theme})
	default:
		app.Settings().SetTheme(theme.DefaultTheme())
	}
}
