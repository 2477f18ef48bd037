package resume

// Font is one of the enumerated display font families.
type Font string

// Supported font families.
const (
	FontSans    Font = "sans"
	FontSerif   Font = "serif"
	FontMono    Font = "mono"
	FontDisplay Font = "display"
	FontSlab    Font = "slab"
	FontOswald  Font = "oswald"
	FontLato    Font = "lato"
)

// Fonts lists the selectable font families in display order.
func Fonts() []Font {
	return []Font{FontSans, FontSerif, FontMono, FontDisplay, FontSlab, FontOswald, FontLato}
}

// ThemeConfig is pure presentation state with a lifecycle independent from the
// resume document.
type ThemeConfig struct {
	Color string `json:"color"`
	Font  Font   `json:"font"`
}

// DefaultTheme returns the accent color and font applied on first load.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{Color: "#29B5E8", Font: FontSans}
}

// Palette is the built-in accent color swatch set. Freeform colors are also
// accepted; the palette is a convenience, not a constraint.
func Palette() []string {
	return []string{"#29B5E8", "#000000", "#DC2626", "#16A34A", "#D97706", "#7C3AED", "#DB2777", "#FFFFFF"}
}

// ValidFont reports whether f is one of the enumerated font families.
func ValidFont(f Font) bool {
	for _, known := range Fonts() {
		if f == known {
			return true
		}
	}
	return false
}
