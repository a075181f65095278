package entity

import "slices"

// PresetColors is the fixed palette offered when picking a category or tool color.
var PresetColors = []string{
	"#ef4444", "#f59e0b", "#eab308", "#84cc16", "#22c55e", "#10b981",
	"#14b8a6", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1", "#8b5cf6",
	"#a855f7", "#d946ef", "#ec4899", "#f43f5e", "#64748b", "#000000",
}

// EmojiOptions is the fixed set of emojis offered for categories.
var EmojiOptions = []string{
	"😀", "🎨", "💻", "🚀", "🔧", "📱", "🎯", "✨", "🌟", "💡",
	"🔥", "🎪", "🎭", "🖌️", "📊", "📈", "🔍", "🔬", "🤖", "⚡",
	"🔌", "📚", "🎓", "🏆",
}

// IsPresetColor reports whether color is one of the palette entries.
func IsPresetColor(color string) bool {
	return slices.Contains(PresetColors, color)
}
