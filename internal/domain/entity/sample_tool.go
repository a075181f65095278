package entity

// DefaultSampleGroupColor is used for a sample label whose color cannot be resolved.
const DefaultSampleGroupColor = "#6b7280"

// SampleTool is a read-only catalog entry shown to anonymous visitors.
// It is grouped by a free-text Label rather than by a Category entity.
type SampleTool struct {
	Name        string
	URL         string
	Description string
	Label       string
	Color       string
}

// DisplayName returns the sample name.
func (s SampleTool) DisplayName() string { return s.Name }

// DisplayDescription returns the sample description.
func (s SampleTool) DisplayDescription() string { return s.Description }

// DisplayColor returns the sample color.
func (s SampleTool) DisplayColor() string { return s.Color }

// GroupKey returns the free-text label the sample is grouped under.
func (s SampleTool) GroupKey() string { return s.Label }

var sampleCatalog = []SampleTool{
	{Name: "ChatGPT", URL: "https://chat.openai.com", Description: "Asistente de IA de OpenAI", Label: "🤖 IA", Color: "#10a37f"},
	{Name: "Claude", URL: "https://claude.ai", Description: "Asistente de IA de Anthropic", Label: "🤖 IA", Color: "#f59e0b"},
	{Name: "Gemini", URL: "https://gemini.google.com", Description: "IA de Google", Label: "🤖 IA", Color: "#4285f4"},
	{Name: "Perplexity", URL: "https://perplexity.ai", Description: "Buscador con IA", Label: "🤖 IA", Color: "#6b7280"},
	{Name: "GitHub Copilot", URL: "https://github.com/features/copilot", Description: "Asistente de código con IA", Label: "🤖 IA", Color: "#8b5cf6"},
	{Name: "VS Code", URL: "https://code.visualstudio.com", Description: "Editor de código de Microsoft", Label: "💻 IDEs", Color: "#0078d4"},
	{Name: "Cursor", URL: "https://cursor.sh", Description: "IDE con IA integrada", Label: "💻 IDEs", Color: "#000000"},
	{Name: "Windsurf", URL: "https://codeium.com/windsurf", Description: "IDE de Codeium", Label: "💻 IDEs", Color: "#3b82f6"},
	{Name: "WebStorm", URL: "https://www.jetbrains.com/webstorm", Description: "IDE para JavaScript", Label: "💻 IDEs", Color: "#00d4ff"},
	{Name: "Figma", URL: "https://figma.com", Description: "Diseño colaborativo", Label: "🎨 Diseño", Color: "#a259ff"},
	{Name: "Canva", URL: "https://canva.com", Description: "Diseño gráfico simple", Label: "🎨 Diseño", Color: "#00c4cc"},
	{Name: "Adobe XD", URL: "https://www.adobe.com/products/xd.html", Description: "Diseño UX/UI", Label: "🎨 Diseño", Color: "#ff61f6"},
	{Name: "Postman", URL: "https://postman.com", Description: "Testing de APIs", Label: "🔌 APIs", Color: "#ff6c37"},
	{Name: "Insomnia", URL: "https://insomnia.rest", Description: "Cliente REST", Label: "🔌 APIs", Color: "#5849be"},
	{Name: "Warp", URL: "https://warp.dev", Description: "Terminal moderna con IA", Label: "⚡ Terminal", Color: "#00d4ff"},
}

// SampleCatalog returns a copy of the static anonymous catalog in display order.
func SampleCatalog() []SampleTool {
	out := make([]SampleTool, len(sampleCatalog))
	copy(out, sampleCatalog)
	return out
}
