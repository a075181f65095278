// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366f1"

// DefaultCategoryEmoji is the glyph rendered for categories without an emoji.
const DefaultCategoryEmoji = "📁"

// Category is a user-defined bucket that groups tools.
// A category belongs to exactly one user for its whole lifetime.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Emoji     string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryDraft carries the user-supplied fields of a new category.
type CategoryDraft struct {
	Name  string
	Emoji string
	Color string
}

// CategoryPatch is a partial update. Nil fields are left untouched.
type CategoryPatch struct {
	Name  *string
	Emoji *string
	Color *string
}

// NewCategory creates a new Category entity owned by userID.
// Validation and color defaulting happen in the application layer before this is called.
func NewCategory(userID uuid.UUID, draft CategoryDraft, now time.Time) *Category {
	now = now.UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      draft.Name,
		Emoji:     draft.Emoji,
		Color:     draft.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DisplayEmoji returns the emoji or the default glyph when none is set.
func (c *Category) DisplayEmoji() string {
	if c.Emoji == "" {
		return DefaultCategoryEmoji
	}
	return c.Emoji
}

// Apply shallow-merges the patch into the category. ID, UserID and CreatedAt never change.
func (c *Category) Apply(patch CategoryPatch, updatedAt time.Time) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Emoji != nil {
		c.Emoji = *patch.Emoji
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	c.UpdatedAt = updatedAt.UTC()
}

// IsEmpty reports whether the patch changes nothing.
func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Emoji == nil && p.Color == nil
}
