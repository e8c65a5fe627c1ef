package site

// Theme is a named visual style applied during site generation: a fixed
// five-color palette plus a font declaration. The table is static and
// read-only for the process lifetime.
type Theme struct {
	Name       string
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
	Font       string
}

const DefaultTheme = "professional"

var themes = map[string]Theme{
	"professional": {
		Name:       "professional",
		Primary:    "#2563eb",
		Secondary:  "#1e40af",
		Accent:     "#f59e0b",
		Background: "#f8fafc",
		Text:       "#1e293b",
		Font:       "'Segoe UI', 'Helvetica Neue', Arial, sans-serif",
	},
	"futuristic": {
		Name:       "futuristic",
		Primary:    "#00d9ff",
		Secondary:  "#7c3aed",
		Accent:     "#ff2d78",
		Background: "#0a0e1a",
		Text:       "#e2e8f0",
		Font:       "'Orbitron', 'Segoe UI', sans-serif",
	},
	"playful": {
		Name:       "playful",
		Primary:    "#f472b6",
		Secondary:  "#fb923c",
		Accent:     "#34d399",
		Background: "#fffbeb",
		Text:       "#374151",
		Font:       "'Comic Sans MS', 'Baloo 2', cursive",
	},
}

// ResolveTheme looks up a theme by name, falling back to the professional
// default for unknown names. The permissive fallback matches the original
// behavior; see DESIGN.md for the recorded decision.
func ResolveTheme(name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes[DefaultTheme]
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	return []string{"professional", "futuristic", "playful"}
}
