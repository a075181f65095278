package entity

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Tool is a bookmarked external link belonging to exactly one category.
// Color is a snapshot taken from the category at creation and is never re-synchronized.
type Tool struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	URL         string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToolDraft carries the user-supplied fields of a new tool.
// An empty Color means "inherit from the category".
type ToolDraft struct {
	Name        string
	URL         string
	Description string
	CategoryID  uuid.UUID
	Color       string
	// AddedAt backdates CreatedAt for imported records. Zero means now.
	AddedAt     time.Time
}

// ToolPatch is a partial update. Nil fields are left untouched.
type ToolPatch struct {
	Name        *string
	URL         *string
	Description *string
	CategoryID  *uuid.UUID
	Color       *string
}

// NewTool creates a new Tool owned by userID. A draft AddedAt in the past
// becomes CreatedAt; UpdatedAt is always now.
func NewTool(userID uuid.UUID, draft ToolDraft, now time.Time) *Tool {
	now = now.UTC()
	createdAt := now
	if !draft.AddedAt.IsZero() && draft.AddedAt.Before(now) {
		createdAt = draft.AddedAt.UTC()
	}
	return &Tool{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  draft.CategoryID,
		Name:        draft.Name,
		URL:         draft.URL,
		Description: draft.Description,
		Color:       draft.Color,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	}
}

// Apply shallow-merges the patch into the tool and refreshes UpdatedAt.
func (t *Tool) Apply(patch ToolPatch, updatedAt time.Time) {
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.URL != nil {
		t.URL = *patch.URL
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		t.CategoryID = *patch.CategoryID
	}
	if patch.Color != nil {
		t.Color = *patch.Color
	}
	t.UpdatedAt = updatedAt.UTC()
}

// IsEmpty reports whether the patch changes nothing.
func (p ToolPatch) IsEmpty() bool {
	return p.Name == nil && p.URL == nil && p.Description == nil && p.CategoryID == nil && p.Color == nil
}

// HasValidURL reports whether URL parses as an absolute URL.
// The result is advisory; malformed URLs are still stored.
func (t *Tool) HasValidURL() bool {
	return IsValidURL(t.URL)
}

// IsValidURL reports whether raw is an absolute URL with a scheme and host.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// DisplayName returns the tool name.
func (t *Tool) DisplayName() string { return t.Name }

// DisplayDescription returns the tool description.
func (t *Tool) DisplayDescription() string { return t.Description }

// DisplayColor returns the tool color.
func (t *Tool) DisplayColor() string { return t.Color }

// GroupKey returns the id of the category the tool belongs to.
func (t *Tool) GroupKey() string { return t.CategoryID.String() }
