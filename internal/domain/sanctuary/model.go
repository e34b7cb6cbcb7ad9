// Package sanctuary holds the typed records behind the Sanctuary page:
// the barber roster, photo gallery, video wall and award shelf.
package sanctuary

import (
	"errors"

	"haircoolest/internal/adapters/docstore"
)

// Barber is one entry in the barber roster.
type Barber struct {
	ID       string
	Name     string
	Position string // e.g. "Senior Barber"
	ImageURL string
}

// GalleryImage is one photo in the sanctuary gallery.
type GalleryImage struct {
	ID       string
	ImageURL string
}

// Video is one entry in the video wall.
type Video struct {
	ID  string
	URL string
}

// Award is one award or press mention.
type Award struct {
	ID       string
	Name     string
	ImageURL string
}

// MainVideo is the featured video stored inline on the settings document.
type MainVideo struct {
	ID  string
	URL string
}

var ErrEmptyName = errors.New("name cannot be empty")

// Validate checks the barber's required fields.
// PRE: Barber struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Barber) Validate() error {
	if b.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// BarberFromDocument decodes a raw document into a Barber, filling defaults.
// Editors write documents field-by-field, so every field is optional.
func BarberFromDocument(d docstore.Document) Barber {
	return Barber{
		ID:       d.ID,
		Name:     d.String("name"),
		Position: d.String("position"),
		ImageURL: d.String("imageUrl"),
	}
}

// GalleryImageFromDocument decodes a raw document into a GalleryImage.
func GalleryImageFromDocument(d docstore.Document) GalleryImage {
	return GalleryImage{ID: d.ID, ImageURL: d.String("imageUrl")}
}

// VideoFromDocument decodes a raw document into a Video.
func VideoFromDocument(d docstore.Document) Video {
	return Video{ID: d.ID, URL: d.String("url")}
}

// AwardFromDocument decodes a raw document into an Award.
func AwardFromDocument(d docstore.Document) Award {
	return Award{ID: d.ID, Name: d.String("name"), ImageURL: d.String("imageUrl")}
}

// MainVideoFromValue decodes the mainVideo settings field. Older documents
// stored a plain URL string; newer ones store an {id, url} object.
// Returns false when the field is absent or unusable.
func MainVideoFromValue(v any) (MainVideo, bool) {
	switch mv := v.(type) {
	case string:
		if mv == "" {
			return MainVideo{}, false
		}
		return MainVideo{ID: "main-video", URL: mv}, true
	case map[string]any:
		id, _ := mv["id"].(string)
		url, _ := mv["url"].(string)
		if id == "" || url == "" {
			return MainVideo{}, false
		}
		return MainVideo{ID: id, URL: url}, true
	default:
		return MainVideo{}, false
	}
}
