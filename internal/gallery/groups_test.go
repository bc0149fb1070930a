package gallery

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/glabrego/gallery-cli/internal/manifest"
)

func TestBuildGroups_FeaturedAndRemainder(t *testing.T) {
	photos := []manifest.Photo{
		{File: "a.jpg", Location: "Arches"},
		{File: "b.jpg", Location: " Arches "},
		{File: "c.jpg", Location: ""},
	}
	got := BuildGroups(photos)
	want := []Group{
		{Kind: GroupLocation, Name: "All", Label: "All", Count: 3},
		{Kind: GroupHeading, Label: "National Parks"},
		{Kind: GroupLocation, Name: "Arches", Label: "Arches", Count: 2},
		{Kind: GroupDivider},
		{Kind: GroupLocation, Name: "Other", Label: "Other", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected groups:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestBuildGroups_Empty(t *testing.T) {
	got := BuildGroups(nil)
	want := []Group{{Kind: GroupLocation, Name: "All", Label: "All", Count: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected groups for empty input: %+v", got)
	}
}

func TestBuildGroups_FeaturedFollowAllowListOrder(t *testing.T) {
	photos := []manifest.Photo{
		{File: "1.jpg", Location: "Zion"},
		{File: "2.jpg", Location: "Arches"},
		{File: "3.jpg", Location: "Yosemite"},
		{File: "4.jpg", Location: "Brooklyn"},
		{File: "5.jpg", Location: "Amsterdam"},
	}
	groups := BuildGroups(photos)

	var featured, remainder []string
	section := ""
	for _, g := range groups[1:] {
		switch g.Kind {
		case GroupHeading:
			section = "featured"
		case GroupDivider:
			section = "remainder"
		case GroupLocation:
			if section == "featured" {
				featured = append(featured, g.Name)
			} else {
				remainder = append(remainder, g.Name)
			}
		}
	}
	if want := []string{"Yosemite", "Zion", "Arches"}; !reflect.DeepEqual(featured, want) {
		t.Fatalf("featured order = %v, want %v", featured, want)
	}
	if want := []string{"Amsterdam", "Brooklyn"}; !reflect.DeepEqual(remainder, want) {
		t.Fatalf("remainder order = %v, want %v", remainder, want)
	}
}

func TestBuildGroups_NoFeaturedStillDividesRemainder(t *testing.T) {
	groups := BuildGroups([]manifest.Photo{{File: "a.jpg", Location: "Lisbon"}})
	if len(groups) != 3 {
		t.Fatalf("expected All, divider, Lisbon; got %+v", groups)
	}
	if groups[1].Kind != GroupDivider || groups[2].Name != "Lisbon" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestBuildGroups_OnlyFeaturedHasNoDivider(t *testing.T) {
	groups := BuildGroups([]manifest.Photo{{File: "a.jpg", Location: "Zion"}})
	for _, g := range groups {
		if g.Kind == GroupDivider {
			t.Fatalf("did not expect a divider without remainder: %+v", groups)
		}
	}
}

func TestBuildGroups_Invariants(t *testing.T) {
	inputs := [][]manifest.Photo{
		nil,
		{{File: "x", Location: "  "}},
		benchmarkPhotos(7),
		benchmarkPhotos(120),
	}
	for i, photos := range inputs {
		groups := BuildGroups(photos)
		if groups[0] != (Group{Kind: GroupLocation, Name: AllLocation, Label: AllLocation, Count: len(photos)}) {
			t.Fatalf("case %d: unexpected first group %+v", i, groups[0])
		}
		sum := 0
		remainder := make([]string, 0)
		inRemainder := false
		for _, g := range groups[1:] {
			if g.Kind == GroupDivider {
				inRemainder = true
			}
			if !g.Selectable() {
				continue
			}
			sum += g.Count
			if inRemainder {
				remainder = append(remainder, g.Name)
			}
		}
		if sum != len(photos) {
			t.Fatalf("case %d: counts sum to %d, want %d", i, sum, len(photos))
		}
		if !sort.StringsAreSorted(remainder) {
			t.Fatalf("case %d: remainder not ascending: %v", i, remainder)
		}
	}
}

func TestBuildGroupsWithOptions_CustomAllowList(t *testing.T) {
	photos := []manifest.Photo{
		{File: "1.jpg", Location: "Paris"},
		{File: "2.jpg", Location: "Rome"},
		{File: "3.jpg", Location: "Oslo"},
	}
	groups := BuildGroupsWithOptions(photos, GroupOptions{Featured: []string{"Rome", "Paris"}, Heading: "Favourites"})
	var got []string
	for _, g := range groups {
		switch g.Kind {
		case GroupHeading:
			got = append(got, "#"+g.Label)
		case GroupDivider:
			got = append(got, "--")
		default:
			got = append(got, g.Name)
		}
	}
	want := []string{"All", "#Favourites", "Rome", "Paris", "--", "Oslo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSortLocations_LocaleAware(t *testing.T) {
	names := []string{"zurich", "eindhoven", "Berlin", "amsterdam", "Édimbourg"}
	SortLocations(names)
	want := []string{"amsterdam", "Berlin", "Édimbourg", "eindhoven", "zurich"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("SortLocations = %v, want %v", names, want)
	}
}

func TestNormalizeLocation(t *testing.T) {
	cases := map[string]string{
		"":         "Other",
		"   ":      "Other",
		" Arches ": "Arches",
		"Zion":     "Zion",
		"\tOslo\n": "Oslo",
		"All":      "Other",
		" All ":    "Other",
		"all":      "all",
	}
	for in, want := range cases {
		if got := NormalizeLocation(in); got != want {
			t.Fatalf("NormalizeLocation(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSelectableIndex(t *testing.T) {
	groups := BuildGroups([]manifest.Photo{{File: "a", Location: "Zion"}, {File: "b", Location: "Oslo"}})
	if got := SelectableIndex(groups, "Oslo"); got != 4 {
		t.Fatalf("expected Oslo at 4, got %d", got)
	}
	if got := SelectableIndex(groups, "National Parks"); got != -1 {
		t.Fatalf("heading must not be selectable, got %d", got)
	}
}

func BenchmarkBuildGroups(b *testing.B) {
	photos := benchmarkPhotos(1200)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = BuildGroups(photos)
	}
}

func benchmarkPhotos(n int) []manifest.Photo {
	locations := append([]string{"", "  ", "Lisbon", "Kyoto", "Reykjavík"}, FeaturedLocations[:5]...)
	out := make([]manifest.Photo, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, manifest.Photo{
			File:     fmt.Sprintf("img/%04d.jpg", i),
			Title:    fmt.Sprintf("Photo %04d", i),
			Location: locations[i%len(locations)],
		})
	}
	return out
}

func TestBuildGroups_LocationNamedAllIsNotASecondAllEntry(t *testing.T) {
	photos := []manifest.Photo{
		{File: "a.jpg", Location: "Zion"},
		{File: "b.jpg", Location: "All"},
	}
	groups := BuildGroups(photos)
	want := []Group{
		{Kind: GroupLocation, Name: AllLocation, Label: AllLocation, Count: 2},
		{Kind: GroupHeading, Label: FeaturedHeading},
		{Kind: GroupLocation, Name: "Zion", Label: "Zion", Count: 1},
		{Kind: GroupDivider},
		{Kind: GroupLocation, Name: OtherLocation, Label: OtherLocation, Count: 1},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Fatalf("expected %+v, got %+v", want, groups)
	}

	vs := NewViewState()
	vs.Load(photos)
	proj := vs.SelectLocation(OtherLocation)
	if len(proj.Photos) != 1 || proj.Photos[0].File != "b.jpg" {
		t.Fatalf("expected the photo located at All to filter on its own, got %+v", proj.Photos)
	}
}
