package entity

import "regexp"

var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// IsValidHexColor reports whether color is #RGB or #RRGGBB.
func IsValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}
