package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/glabrego/gallery-cli/internal/gallery"
)

// FilterGroups narrows the chooser to locations matching query. The "All"
// entry, headings and dividers are always kept so the chooser keeps its shape.
func FilterGroups(groups []gallery.Group, query string) []gallery.Group {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]gallery.Group(nil), groups...)
	}

	names := make([]string, 0, len(groups))
	indices := make([]int, 0, len(groups))
	for i, group := range groups {
		if group.Selectable() && group.Name != gallery.AllLocation {
			names = append(names, group.Name)
			indices = append(indices, i)
		}
	}

	matches := make(map[int]struct{}, len(names))
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, names) {
		matches[indices[rank.OriginalIndex]] = struct{}{}
	}
	if len(matches) == 0 {
		lower := strings.ToLower(trimmed)
		for j, name := range names {
			if strings.Contains(strings.ToLower(name), lower) {
				matches[indices[j]] = struct{}{}
			}
		}
	}

	out := make([]gallery.Group, 0, len(matches)+3)
	for i, group := range groups {
		if !group.Selectable() || group.Name == gallery.AllLocation {
			out = append(out, group)
			continue
		}
		if _, ok := matches[i]; ok {
			out = append(out, group)
		}
	}
	return out
}

// BestGroupMatch picks the cursor position for query: an exact name, then a
// prefix, then the closest fuzzy match. It returns -1 when nothing matches.
func BestGroupMatch(groups []gallery.Group, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, group := range groups {
		if group.Selectable() && strings.EqualFold(group.Name, trimmed) {
			return i
		}
	}
	for i, group := range groups {
		if group.Selectable() && strings.HasPrefix(strings.ToLower(group.Name), lower) {
			return i
		}
	}

	names := make([]string, 0, len(groups))
	indices := make([]int, 0, len(groups))
	for i, group := range groups {
		if group.Selectable() {
			names = append(names, group.Name)
			indices = append(indices, i)
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return indices[best.OriginalIndex]
}
