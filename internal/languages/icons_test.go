package languages_test

import (
	"testing"

	"github.com/prakharpd/portfolio/internal/languages"
	"github.com/stretchr/testify/assert"
)

func TestIcon(t *testing.T) {
	testCases := []struct {
		Language string
		Expected string
	}{
		{Language: "JavaScript", Expected: "🟨"},
		{Language: "Python", Expected: "🐍"},
		{Language: "Java", Expected: "☕"},
		{Language: "C", Expected: "©️"},
		{Language: "C++", Expected: "⚙️"},
		{Language: "C#", Expected: "#️⃣"},
		{Language: "HTML", Expected: "🌐"},
		{Language: "CSS", Expected: "🎨"},
		{Language: "PHP", Expected: "🐘"},
		{Language: "Ruby", Expected: "💎"},
		{Language: "Go", Expected: "🐹"},
		{Language: "Rust", Expected: "🦀"},
		{Language: "Swift", Expected: "🍎"},
		{Language: "Kotlin", Expected: "🅺"},
		{Language: "TypeScript", Expected: "📘"},
		{Language: "R", Expected: "📊"},
		{Language: "Dart", Expected: "🎯"},
		{Language: "Shell", Expected: "🐚"},
		{Language: "Jupyter Notebook", Expected: "📓"},
	}

	for _, tc := range testCases {
		t.Run(tc.Language, func(t *testing.T) {
			assert.Equal(t, tc.Expected, languages.Icon(tc.Language))
		})
	}
	assert.Len(t, languages.Known(), len(testCases))
}

func TestIconFallsBackToDefault(t *testing.T) {
	testCases := []struct {
		Name     string
		Language string
	}{
		{Name: "empty", Language: ""},
		{Name: "unmapped", Language: "Haskell"},
		{Name: "case_sensitive", Language: "go"},
		{Name: "default_key_is_not_special", Language: "default"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, languages.DefaultIcon, languages.Icon(tc.Language))
		})
	}
}
