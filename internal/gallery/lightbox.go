package gallery

import "github.com/glabrego/gallery-cli/internal/manifest"

// Lightbox tracks the photo shown full-screen as an index into the active
// list. The zero value is closed.
type Lightbox struct {
	open  bool
	index int
}

func (l Lightbox) IsOpen() bool {
	return l.open
}

func (l Lightbox) Index() int {
	return l.index
}

// Open shows photo, located by file within list. Photos missing from list open
// at index 0.
func (l *Lightbox) Open(list []manifest.Photo, photo manifest.Photo) {
	idx := IndexOfFile(list, photo.File)
	if idx < 0 {
		idx = 0
	}
	l.open = true
	l.index = idx
}

func (l *Lightbox) Next(list []manifest.Photo) {
	l.step(list, 1)
}

func (l *Lightbox) Prev(list []manifest.Photo) {
	l.step(list, -1)
}

func (l *Lightbox) Close() {
	l.open = false
	l.index = 0
}

// Current returns the displayed photo. It reports false when closed or when
// list is empty.
func (l Lightbox) Current(list []manifest.Photo) (manifest.Photo, bool) {
	if !l.open || len(list) == 0 {
		return manifest.Photo{}, false
	}
	return list[WrapIndex(l.index, len(list))], true
}

func (l *Lightbox) step(list []manifest.Photo, delta int) {
	if !l.open || len(list) == 0 {
		return
	}
	l.index = WrapIndex(l.index+delta, len(list))
}

// WrapIndex maps i into [0, size) modulo size. It returns 0 for empty sizes.
func WrapIndex(i, size int) int {
	if size <= 0 {
		return 0
	}
	i %= size
	if i < 0 {
		i += size
	}
	return i
}

// IndexOfFile returns the position of the first photo whose file matches
// exactly, or -1.
func IndexOfFile(list []manifest.Photo, file string) int {
	for i, photo := range list {
		if photo.File == file {
			return i
		}
	}
	return -1
}
