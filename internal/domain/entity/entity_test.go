package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#6366f1", true},
		{"#FFF", true},
		{"#aBc123", true},
		{"", false},
		{"6366f1", false},
		{"#12345", false},
		{"#gggggg", false},
		{"blue", false},
		{"#6366f1 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			if got := IsValidHexColor(tt.color); got != tt.want {
				t.Errorf("IsValidHexColor(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestLegacyTool_AddedTime(t *testing.T) {
	tests := []struct {
		name    string
		addedAt string
		want    time.Time
	}{
		{name: "iso with millis", addedAt: "2024-01-15T09:30:00.123Z", want: time.Date(2024, 1, 15, 9, 30, 0, 123000000, time.UTC)},
		{name: "iso without millis", addedAt: "2024-01-15T09:30:00Z", want: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)},
		{name: "empty", addedAt: ""},
		{name: "garbage", addedAt: "last week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LegacyTool{AddedAt: tt.addedAt}.AddedTime()
			if !got.Equal(tt.want) {
				t.Errorf("AddedTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTool_AddedAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)

	tests := []struct {
		name        string
		addedAt     time.Time
		wantCreated time.Time
	}{
		{name: "zero uses now", wantCreated: now},
		{name: "past is kept", addedAt: past, wantCreated: past},
		{name: "future is ignored", addedAt: now.Add(time.Hour), wantCreated: now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewTool(uuid.New(), ToolDraft{Name: "x", URL: "https://x.dev", AddedAt: tt.addedAt}, now)
			if !tool.CreatedAt.Equal(tt.wantCreated) {
				t.Errorf("CreatedAt = %v, want %v", tool.CreatedAt, tt.wantCreated)
			}
			if !tool.UpdatedAt.Equal(now) {
				t.Errorf("UpdatedAt = %v, want %v", tool.UpdatedAt, now)
			}
		})
	}
}
