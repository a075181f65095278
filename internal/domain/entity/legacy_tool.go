package entity

import (
	"strings"
	"time"
)

// LegacyTool is a record of the local-storage "user-tools" array written by
// the first, backend-less version of the app.
type LegacyTool struct {
	Name        string
	URL         string
	Description string
	Category    string
	Color       string
	AddedAt     string
}

// AddedTime parses AddedAt, an ISO-8601 timestamp. Unparsable values give
// the zero time.
func (t LegacyTool) AddedTime() time.Time {
	added, err := time.Parse(time.RFC3339, strings.TrimSpace(t.AddedAt))
	if err != nil {
		return time.Time{}
	}
	return added
}

// LegacyCategory is one of the fixed categories of the local-storage version.
type LegacyCategory struct {
	Value string
	Label string
	Color string
}

// LegacyFallbackCategory is used for records whose category value is unknown.
const LegacyFallbackCategory = "otros"

var legacyCategories = []LegacyCategory{
	{Value: "desarrollo", Label: "💻 Desarrollo", Color: "#3b82f6"},
	{Value: "ia", Label: "🤖 IA & Asistentes", Color: "#f59e0b"},
	{Value: "apis", Label: "🔌 APIs & Testing", Color: "#10b981"},
	{Value: "diseno", Label: "🎨 Diseño & UI", Color: "#8b5cf6"},
	{Value: "bibliotecas", Label: "📚 Bibliotecas", Color: "#ec4899"},
	{Value: "terminal", Label: "⚡ Terminal & DevOps", Color: "#06b6d4"},
	{Value: LegacyFallbackCategory, Label: "🔧 Otros", Color: "#6b7280"},
}

// LookupLegacyCategory returns the legacy category for value, falling back to "otros".
func LookupLegacyCategory(value string) LegacyCategory {
	for _, c := range legacyCategories {
		if c.Value == value {
			return c
		}
	}
	return legacyCategories[len(legacyCategories)-1]
}

// Draft splits the legacy label into an emoji and a name.
func (c LegacyCategory) Draft() CategoryDraft {
	emoji, name, found := strings.Cut(c.Label, " ")
	if !found {
		return CategoryDraft{Name: c.Label, Color: c.Color}
	}
	return CategoryDraft{Name: name, Emoji: emoji, Color: c.Color}
}
