// Package projection derives the grouped, filtered structure the client renders
// from a list of tools and their categories. Everything here is pure.
package projection

import (
	"strings"

	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// Item is anything that can be searched and grouped. Authenticated tools group
// by category id, anonymous sample tools by their free-text label.
type Item interface {
	DisplayName() string
	DisplayDescription() string
	DisplayColor() string
	GroupKey() string
}

// ViewMode is a presentation density. It never changes the projected data.
type ViewMode string

const (
	ModeGrid    ViewMode = "grid"
	ModeList    ViewMode = "list"
	ModeCompact ViewMode = "compact"
)

// ParseViewMode validates raw. An empty string selects grid.
func ParseViewMode(raw string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeGrid:
		return ModeGrid, nil
	case ModeList:
		return ModeList, nil
	case ModeCompact:
		return ModeCompact, nil
	default:
		return "", domainerror.ErrInvalidViewMode
	}
}

// State tells the client which empty-state message, if any, to show.
type State string

const (
	StateReady        State = "ready"
	StateNoCategories State = "no_categories"
	StateEmptyCatalog State = "empty_catalog"
	StateNoResults    State = "no_results"
)

// Header holds the display fields of a group.
type Header struct {
	Key   string
	Name  string
	Emoji string
	Color string
}

// Group is a non-empty run of items sharing a header.
type Group[T Item] struct {
	Header
	Items []T
}

// View is the full projection result.
type View[T Item] struct {
	Mode       ViewMode
	State      State
	Groups     []Group[T]
	TotalItems int
	Matched    int
}

// Matches reports whether item's name or description contains term,
// ignoring case. An empty term matches everything.
func Matches(item Item, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(item.DisplayName()), needle) ||
		strings.Contains(strings.ToLower(item.DisplayDescription()), needle)
}

// Filter keeps the items matching term, preserving order.
func Filter[T Item](items []T, term string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(it, term) {
			out = append(out, it)
		}
	}
	return out
}

// group buckets items under headers in header order and drops empty buckets.
func group[T Item](items []T, headers []Header) []Group[T] {
	buckets := make(map[string][]T, len(headers))
	for _, it := range items {
		key := it.GroupKey()
		buckets[key] = append(buckets[key], it)
	}

	groups := make([]Group[T], 0, len(headers))
	for _, h := range headers {
		if members := buckets[h.Key]; len(members) > 0 {
			groups = append(groups, Group[T]{Header: h, Items: members})
		}
	}
	return groups
}

// GroupByCategory projects a signed-in user's tools. Groups follow category
// order; tools whose category is missing are not shown.
func GroupByCategory(tools []*entity.Tool, categories []*entity.Category, term string, mode ViewMode) View[*entity.Tool] {
	headers := make([]Header, len(categories))
	for i, c := range categories {
		headers[i] = Header{
			Key:   c.ID.String(),
			Name:  c.Name,
			Emoji: c.DisplayEmoji(),
			Color: c.Color,
		}
	}

	filtered := Filter(tools, term)
	view := View[*entity.Tool]{
		Mode:       mode,
		Groups:     group(filtered, headers),
		TotalItems: len(tools),
	}
	view.Matched = countItems(view.Groups)

	if len(categories) == 0 {
		view.State = StateNoCategories
		return view
	}
	view.State = stateFor(len(tools), view.Matched)
	return view
}

// GroupByLabel projects the anonymous sample catalog. Labels appear in the
// order they are first seen among the filtered samples.
func GroupByLabel(samples []entity.SampleTool, term string, mode ViewMode) View[entity.SampleTool] {
	filtered := Filter(samples, term)

	var headers []Header
	seen := make(map[string]bool)
	for _, s := range filtered {
		if seen[s.Label] {
			continue
		}
		seen[s.Label] = true
		headers = append(headers, Header{
			Key:   s.Label,
			Name:  s.Label,
			Color: labelColor(filtered, s.Label),
		})
	}

	view := View[entity.SampleTool]{
		Mode:       mode,
		Groups:     group(filtered, headers),
		TotalItems: len(samples),
	}
	view.Matched = countItems(view.Groups)
	view.State = stateFor(len(samples), view.Matched)
	return view
}

func labelColor(samples []entity.SampleTool, label string) string {
	for _, s := range samples {
		if s.Label == label && s.Color != "" {
			return s.Color
		}
	}
	return entity.DefaultSampleGroupColor
}

func stateFor(total, matched int) State {
	switch {
	case total == 0:
		return StateEmptyCatalog
	case matched == 0:
		return StateNoResults
	default:
		return StateReady
	}
}

func countItems[T Item](groups []Group[T]) int {
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	return n
}
