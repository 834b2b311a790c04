// Package languages maps GitHub primary languages to the glyph shown on a project tile.
package languages

// DefaultIcon is used for unknown or missing languages.
const DefaultIcon = "💻"

var icons = map[string]string{
	"JavaScript":       "🟨",
	"Python":           "🐍",
	"Java":             "☕",
	"C":                "©️",
	"C++":              "⚙️",
	"C#":               "#️⃣",
	"HTML":             "🌐",
	"CSS":              "🎨",
	"PHP":              "🐘",
	"Ruby":             "💎",
	"Go":               "🐹",
	"Rust":             "🦀",
	"Swift":            "🍎",
	"Kotlin":           "🅺",
	"TypeScript":       "📘",
	"R":                "📊",
	"Dart":             "🎯",
	"Shell":            "🐚",
	"Jupyter Notebook": "📓",
}

// Icon returns the glyph for language. Matching is exact, and an empty or
// unmapped language yields DefaultIcon.
func Icon(language string) string {
	if icon, ok := icons[language]; ok {
		return icon
	}
	return DefaultIcon
}

// Known reports the languages that have a dedicated glyph.
func Known() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	return names
}
