package gallery

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/glabrego/gallery-cli/internal/manifest"
)

const (
	AllLocation     = "All"
	OtherLocation   = "Other"
	FeaturedHeading = "National Parks"
)

// FeaturedLocations is the ordered allow-list of locations shown under the
// featured heading.
var FeaturedLocations = []string{
	"Yosemite",
	"Yellowstone",
	"Grand Canyon",
	"Zion",
	"Arches",
	"Bryce Canyon",
	"Canyonlands",
	"Capitol Reef",
	"Glacier",
	"Grand Teton",
	"Rocky Mountain",
	"Olympic",
	"Joshua Tree",
	"Death Valley",
	"Sequoia",
}

type GroupKind string

const (
	GroupLocation GroupKind = "location"
	GroupHeading  GroupKind = "heading"
	GroupDivider  GroupKind = "divider"
)

type Group struct {
	Kind  GroupKind
	Name  string
	Label string
	Count int
}

func (g Group) Selectable() bool {
	return g.Kind == GroupLocation
}

type GroupOptions struct {
	Featured []string
	Heading  string
}

var DefaultGroupOptions = GroupOptions{
	Featured: FeaturedLocations,
	Heading:  FeaturedHeading,
}

// NormalizeLocation trims the location. Blank locations and the reserved
// name "All" belong to "Other", so "All" only ever names the synthetic entry.
func NormalizeLocation(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" || trimmed == AllLocation {
		return OtherLocation
	}
	return trimmed
}

func BuildGroups(photos []manifest.Photo) []Group {
	return BuildGroupsWithOptions(photos, DefaultGroupOptions)
}

func BuildGroupsWithOptions(photos []manifest.Photo, opts GroupOptions) []Group {
	counts := make(map[string]int)
	for _, photo := range photos {
		counts[NormalizeLocation(photo.Location)]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	SortLocations(names)

	featuredRank := make(map[string]int, len(opts.Featured))
	for i, name := range opts.Featured {
		if _, dup := featuredRank[name]; !dup {
			featuredRank[name] = i
		}
	}

	featured := make([]Group, 0, len(opts.Featured))
	remainder := make([]Group, 0, len(names))
	for _, name := range names {
		g := Group{Kind: GroupLocation, Name: name, Label: name, Count: counts[name]}
		if _, ok := featuredRank[name]; ok {
			featured = append(featured, g)
			continue
		}
		remainder = append(remainder, g)
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featuredRank[featured[i].Name] < featuredRank[featured[j].Name]
	})

	groups := make([]Group, 0, len(names)+3)
	groups = append(groups, Group{Kind: GroupLocation, Name: AllLocation, Label: AllLocation, Count: len(photos)})
	if len(featured) > 0 {
		groups = append(groups, Group{Kind: GroupHeading, Label: opts.Heading})
		groups = append(groups, featured...)
	}
	if len(remainder) > 0 {
		groups = append(groups, Group{Kind: GroupDivider})
		groups = append(groups, remainder...)
	}
	return groups
}

// SortLocations orders names with a locale-aware collator, falling back to
// byte order when the collator considers two names equal.
func SortLocations(names []string) {
	c := collate.New(language.Und)
	sort.SliceStable(names, func(i, j int) bool {
		if cmp := c.CompareString(names[i], names[j]); cmp != 0 {
			return cmp < 0
		}
		return names[i] < names[j]
	})
}

// SelectableIndex returns the position of the selectable group called name,
// or -1.
func SelectableIndex(groups []Group, name string) int {
	for i, g := range groups {
		if g.Selectable() && g.Name == name {
			return i
		}
	}
	return -1
}
