package dto

import (
	"github.com/toolbox/backend/internal/application/projection"
	"github.com/toolbox/backend/internal/domain/entity"
)

// CardResponse is one tool card of a projected view.
type CardResponse struct {
	ID          string `json:"id,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Excerpt     string `json:"excerpt"`
	Initial     string `json:"initial"`
	Color       string `json:"color"`
	ValidURL    bool   `json:"valid_url"`
}

// GroupResponse is a header followed by its cards.
type GroupResponse struct {
	Key   string         `json:"key"`
	Name  string         `json:"name"`
	Emoji string         `json:"emoji,omitempty"`
	Color string         `json:"color"`
	Count int            `json:"count"`
	Items []CardResponse `json:"items"`
}

// ViewResponse is a grouped, filtered projection.
type ViewResponse struct {
	Mode       string          `json:"mode"`
	State      string          `json:"state"`
	TotalItems int             `json:"total_items"`
	Matched    int             `json:"matched"`
	Groups     []GroupResponse `json:"groups"`
}

// PaletteResponse lists the preset colors and emojis.
type PaletteResponse struct {
	Colors       []string `json:"colors"`
	Emojis       []string `json:"emojis"`
	DefaultColor string   `json:"default_color"`
	DefaultEmoji string   `json:"default_emoji"`
}

// ToToolViewResponse converts the signed-in user's view.
func ToToolViewResponse(view projection.View[*entity.Tool]) ViewResponse {
	return toViewResponse(view, func(t *entity.Tool) CardResponse {
		return CardResponse{
			ID:          t.ID.String(),
			CategoryID:  t.CategoryID.String(),
			Name:        t.Name,
			URL:         t.URL,
			Description: t.Description,
			Excerpt:     projection.Truncate(t.Description, projection.DefaultTruncateLength),
			Initial:     projection.Initial(t.Name),
			Color:       t.Color,
			ValidURL:    t.HasValidURL(),
		}
	})
}

// ToCatalogViewResponse converts the sample catalog view.
func ToCatalogViewResponse(view projection.View[entity.SampleTool]) ViewResponse {
	return toViewResponse(view, func(s entity.SampleTool) CardResponse {
		return CardResponse{
			Name:        s.Name,
			URL:         s.URL,
			Description: s.Description,
			Excerpt:     projection.Truncate(s.Description, projection.DefaultTruncateLength),
			Initial:     projection.Initial(s.Name),
			Color:       s.Color,
			ValidURL:    entity.IsValidURL(s.URL),
		}
	})
}

func toViewResponse[T projection.Item](view projection.View[T], card func(T) CardResponse) ViewResponse {
	resp := ViewResponse{
		Mode:       string(view.Mode),
		State:      string(view.State),
		TotalItems: view.TotalItems,
		Matched:    view.Matched,
		Groups:     make([]GroupResponse, len(view.Groups)),
	}
	for i, g := range view.Groups {
		items := make([]CardResponse, len(g.Items))
		for j, item := range g.Items {
			items[j] = card(item)
		}
		resp.Groups[i] = GroupResponse{
			Key:   g.Key,
			Name:  g.Name,
			Emoji: g.Emoji,
			Color: g.Color,
			Count: len(items),
			Items: items,
		}
	}
	return resp
}
