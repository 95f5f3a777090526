package engine

// Theme is the board backdrop of a round
type Theme string

// Themes in the order they are played
const (
	ThemePrairie  Theme = "prairie"
	ThemeDesert   Theme = "desert"
	ThemeArctic   Theme = "arctic"
	ThemeMountain Theme = "mountain"
)

var themeOrder = []Theme{ThemePrairie, ThemeDesert, ThemeArctic, ThemeMountain}

// Next returns the theme after t, wrapping around. An empty or unknown
// theme starts the cycle.
func (t Theme) Next() Theme {
	for i, theme := range themeOrder {
		if theme == t {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	for _, theme := range themeOrder {
		if theme == t {
			return true
		}
	}
	return false
}
