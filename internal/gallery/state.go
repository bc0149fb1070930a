package gallery

import (
	"fmt"

	"github.com/glabrego/gallery-cli/internal/manifest"
)

// ViewState is the single owner of gallery data and selection. Callers
// serialize access; the TUI only mutates it from Update.
type ViewState struct {
	Photos         []manifest.Photo
	ActiveLocation string
	ActiveList     []manifest.Photo
	Lightbox       Lightbox
}

// Projection is everything the surface needs to draw one frame.
type Projection struct {
	Groups         []Group
	Photos         []manifest.Photo
	ActiveLocation string
	ActiveLabel    string
	CountLabel     string
}

func NewViewState() ViewState {
	return ViewState{ActiveLocation: AllLocation}
}

func (s *ViewState) Load(photos []manifest.Photo) Projection {
	s.Photos = append([]manifest.Photo(nil), photos...)
	s.ActiveLocation = AllLocation
	s.Lightbox.Close()
	return s.Render()
}

// SelectLocation switches the filter without validating name. The lightbox is
// closed so its index never refers to a list it was not opened on.
func (s *ViewState) SelectLocation(name string) Projection {
	s.ActiveLocation = name
	s.Lightbox.Close()
	return s.Render()
}

func (s *ViewState) Render() Projection {
	if s.ActiveLocation == "" {
		s.ActiveLocation = AllLocation
	}
	s.ActiveList = FilterByLocation(s.Photos, s.ActiveLocation)
	return Projection{
		Groups:         BuildGroups(s.Photos),
		Photos:         s.ActiveList,
		ActiveLocation: s.ActiveLocation,
		ActiveLabel:    ActiveLabel(s.ActiveLocation),
		CountLabel:     CountLabel(len(s.ActiveList)),
	}
}

func (s *ViewState) OpenPhoto(photo manifest.Photo) {
	s.Lightbox.Open(s.ActiveList, photo)
}

func (s *ViewState) NextPhoto() {
	s.Lightbox.Next(s.ActiveList)
}

func (s *ViewState) PrevPhoto() {
	s.Lightbox.Prev(s.ActiveList)
}

func (s *ViewState) CloseLightbox() {
	s.Lightbox.Close()
}

func (s ViewState) CurrentPhoto() (manifest.Photo, bool) {
	return s.Lightbox.Current(s.ActiveList)
}

func (s ViewState) ActiveIndex() int {
	return s.Lightbox.Index()
}

// FilterByLocation keeps photos whose normalized location equals location,
// preserving order. "All" returns photos unchanged.
func FilterByLocation(photos []manifest.Photo, location string) []manifest.Photo {
	if location == AllLocation {
		return photos
	}
	out := make([]manifest.Photo, 0, len(photos))
	for _, photo := range photos {
		if NormalizeLocation(photo.Location) == location {
			out = append(out, photo)
		}
	}
	return out
}

func ActiveLabel(location string) string {
	if location == AllLocation {
		return "All Photos"
	}
	return location
}

func CountLabel(n int) string {
	if n == 1 {
		return "1 photo"
	}
	return fmt.Sprintf("%d photos", n)
}
