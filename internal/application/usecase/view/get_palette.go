package view

import (
	"slices"

	"github.com/toolbox/backend/internal/domain/entity"
)

// GetPaletteOutput lists the preset choices offered by the pickers.
type GetPaletteOutput struct {
	Colors       []string
	Emojis       []string
	DefaultColor string
	DefaultEmoji string
}

// GetPaletteUseCase returns the preset colors and emojis.
type GetPaletteUseCase struct{}

// NewGetPaletteUseCase creates a new GetPaletteUseCase instance.
func NewGetPaletteUseCase() *GetPaletteUseCase {
	return &GetPaletteUseCase{}
}

// Execute returns copies of the palette so callers cannot alter it.
func (uc *GetPaletteUseCase) Execute() *GetPaletteOutput {
	return &GetPaletteOutput{
		Colors:       slices.Clone(entity.PresetColors),
		Emojis:       slices.Clone(entity.EmojiOptions),
		DefaultColor: entity.DefaultCategoryColor,
		DefaultEmoji: entity.DefaultCategoryEmoji,
	}
}
