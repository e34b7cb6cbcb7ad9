// Package cave holds the typed records behind the Cave page: the lounge
// gallery, playground items, food menu and event calendar.
package cave

import (
	"errors"

	"haircoolest/internal/adapters/docstore"
)

// GalleryImage is one photo in the cave gallery.
type GalleryImage struct {
	ID       string
	ImageURL string
}

// PlaygroundItem is one entry in the playground showcase.
type PlaygroundItem struct {
	ID       string
	Name     string
	ImageURL string
}

// MenuCategory groups menu items. Order is an advisory sort key.
type MenuCategory struct {
	ID    string
	Name  string
	Order int
}

// MenuItem is one dish or drink. CategoryID is a foreign key by convention:
// deleting the category does not cascade, so items may hold a dangling id.
type MenuItem struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	ImageURL    string
}

// Event is one upcoming or past event at the cave.
type Event struct {
	ID          string
	Title       string
	Date        string // "2006-01-02" date string, sorted lexically
	Location    string
	ImageURL    string
	Description string
	LinkURL     string
}

var (
	ErrEmptyName  = errors.New("name cannot be empty")
	ErrEmptyTitle = errors.New("event title cannot be empty")
)

// Validate checks the category's required fields.
func (c *MenuCategory) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Validate checks the menu item's required fields.
func (m *MenuItem) Validate() error {
	if m.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Validate checks the event's required fields.
func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// GalleryImageFromDocument decodes a raw document into a GalleryImage.
func GalleryImageFromDocument(d docstore.Document) GalleryImage {
	return GalleryImage{ID: d.ID, ImageURL: d.String("imageUrl")}
}

// PlaygroundItemFromDocument decodes a raw document into a PlaygroundItem.
func PlaygroundItemFromDocument(d docstore.Document) PlaygroundItem {
	return PlaygroundItem{ID: d.ID, Name: d.String("name"), ImageURL: d.String("imageUrl")}
}

// MenuCategoryFromDocument decodes a raw document into a MenuCategory.
func MenuCategoryFromDocument(d docstore.Document) MenuCategory {
	return MenuCategory{ID: d.ID, Name: d.String("name"), Order: d.Int("order")}
}

// MenuItemFromDocument decodes a raw document into a MenuItem.
func MenuItemFromDocument(d docstore.Document) MenuItem {
	return MenuItem{
		ID:          d.ID,
		CategoryID:  d.String("categoryId"),
		Name:        d.String("name"),
		Description: d.String("description"),
		ImageURL:    d.String("imageUrl"),
	}
}

// EventFromDocument decodes a raw document into an Event. Older documents
// used a "datetime" field; it is accepted as a fallback for "date".
func EventFromDocument(d docstore.Document) Event {
	date := d.String("date")
	if date == "" {
		date = d.String("datetime")
	}
	return Event{
		ID:          d.ID,
		Title:       d.String("title"),
		Date:        date,
		Location:    d.String("location"),
		ImageURL:    d.String("imageUrl"),
		Description: d.String("description"),
		LinkURL:     d.String("linkUrl"),
	}
}
