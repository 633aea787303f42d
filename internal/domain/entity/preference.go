package entity

import "orderpad/internal/errors"

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrInvalidTheme is returned when a theme value is neither light nor dark.
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme validates a raw theme string.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), nil
	default:
		return "", errors.Wrapf(ErrInvalidTheme, "%q", raw)
	}
}
