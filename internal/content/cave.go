package content

import (
	"context"
	"sort"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/domain/cave"
)

// Cave manages the Cave page: header/bio texts and images, the lounge
// gallery, playground showcase, food menu and event calendar.
type Cave struct {
	settings   *Settings
	gallery    *Repository[cave.GalleryImage]
	playground *Repository[cave.PlaygroundItem]
	categories *Repository[cave.MenuCategory]
	items      *Repository[cave.MenuItem]
	events     *Repository[cave.Event]
}

// NewCave wires the Cave module against the document store.
func NewCave(store docstore.Store) *Cave {
	return &Cave{
		settings:   NewSettings(store, "cave"),
		gallery:    NewRepository(store, "cave-gallery", cave.GalleryImageFromDocument),
		playground: NewRepository(store, "cave-playground", cave.PlaygroundItemFromDocument),
		categories: NewRepository(store, "cave-menu-categories", cave.MenuCategoryFromDocument),
		items:      NewRepository(store, "cave-menu-items", cave.MenuItemFromDocument),
		events:     NewRepository(store, "cave-events", cave.EventFromDocument),
	}
}

func (c *Cave) Title(ctx context.Context) string    { return c.settings.Field(ctx, "title") }
func (c *Cave) Subtitle(ctx context.Context) string { return c.settings.Field(ctx, "subtitle") }
func (c *Cave) HeaderImage(ctx context.Context) string {
	return c.settings.Field(ctx, "headerImage")
}
func (c *Cave) BioText(ctx context.Context) string  { return c.settings.Field(ctx, "bioText") }
func (c *Cave) BioImage(ctx context.Context) string { return c.settings.Field(ctx, "bioImage") }
func (c *Cave) DisclaimerText(ctx context.Context) string {
	return c.settings.Field(ctx, "disclaimerText")
}
func (c *Cave) TaglineText(ctx context.Context) string {
	return c.settings.Field(ctx, "taglineText")
}

func (c *Cave) SetTitle(ctx context.Context, v string) bool {
	return c.settings.SetField(ctx, "title", v)
}
func (c *Cave) SetSubtitle(ctx context.Context, v string) bool {
	return c.settings.SetField(ctx, "subtitle", v)
}
func (c *Cave) SetHeaderImage(ctx context.Context, url string) bool {
	return c.settings.SetField(ctx, "headerImage", url)
}
func (c *Cave) SetBioText(ctx context.Context, v string) bool {
	return c.settings.SetField(ctx, "bioText", v)
}
func (c *Cave) SetBioImage(ctx context.Context, url string) bool {
	return c.settings.SetField(ctx, "bioImage", url)
}
func (c *Cave) SetDisclaimerText(ctx context.Context, v string) bool {
	return c.settings.SetField(ctx, "disclaimerText", v)
}
func (c *Cave) SetTaglineText(ctx context.Context, v string) bool {
	return c.settings.SetField(ctx, "taglineText", v)
}

// Gallery collection: add and delete only.

func (c *Cave) GalleryImages(ctx context.Context) []cave.GalleryImage {
	return c.gallery.List(ctx)
}

func (c *Cave) AddGalleryImage(ctx context.Context, imageURL string) (string, error) {
	return c.gallery.Add(ctx, map[string]any{"imageUrl": imageURL})
}

func (c *Cave) DeleteGalleryImage(ctx context.Context, id string) error {
	return c.gallery.Delete(ctx, id)
}

// Playground collection.

// PlaygroundUpdate carries a partial playground edit.
type PlaygroundUpdate struct {
	Name     *string
	ImageURL *string
}

func (c *Cave) PlaygroundItems(ctx context.Context) []cave.PlaygroundItem {
	return c.playground.List(ctx)
}

func (c *Cave) AddPlaygroundItem(ctx context.Context, name, imageURL string) (string, error) {
	return c.playground.Add(ctx, map[string]any{"name": name, "imageUrl": imageURL})
}

func (c *Cave) UpdatePlaygroundItem(ctx context.Context, id string, u PlaygroundUpdate) error {
	fields := map[string]any{}
	setIf(fields, "name", u.Name)
	setIf(fields, "imageUrl", u.ImageURL)
	return c.playground.Update(ctx, id, fields)
}

func (c *Cave) DeletePlaygroundItem(ctx context.Context, id string) error {
	return c.playground.Delete(ctx, id)
}

// Menu categories, sorted by the advisory order key.

// MenuCategoryUpdate carries a partial category edit.
type MenuCategoryUpdate struct {
	Name  *string
	Order *int
}

func (c *Cave) MenuCategories(ctx context.Context) []cave.MenuCategory {
	categories := c.categories.List(ctx)
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Order != categories[j].Order {
			return categories[i].Order < categories[j].Order
		}
		return categories[i].Name < categories[j].Name
	})
	return categories
}

func (c *Cave) AddMenuCategory(ctx context.Context, name string, order int) (string, error) {
	return c.categories.Add(ctx, map[string]any{"name": name, "order": order})
}

func (c *Cave) UpdateMenuCategory(ctx context.Context, id string, u MenuCategoryUpdate) error {
	fields := map[string]any{}
	setIf(fields, "name", u.Name)
	setIf(fields, "order", u.Order)
	return c.categories.Update(ctx, id, fields)
}

// DeleteMenuCategory removes a category WITHOUT cascading to its menu items.
// Items keep their categoryId and are re-homed manually by editors; the
// dashboard's confirmation prompt spells this out.
func (c *Cave) DeleteMenuCategory(ctx context.Context, id string) error {
	return c.categories.Delete(ctx, id)
}

// Menu items.

// MenuItemParams carries the fields of a new menu item.
type MenuItemParams struct {
	CategoryID  string
	Name        string
	Description string
	ImageURL    string
}

// MenuItemUpdate carries a partial menu item edit.
type MenuItemUpdate struct {
	CategoryID  *string
	Name        *string
	Description *string
	ImageURL    *string
}

func (c *Cave) MenuItems(ctx context.Context) []cave.MenuItem {
	return c.items.List(ctx)
}

func (c *Cave) AddMenuItem(ctx context.Context, p MenuItemParams) (string, error) {
	return c.items.Add(ctx, map[string]any{
		"categoryId": p.CategoryID, "name": p.Name,
		"description": p.Description, "imageUrl": p.ImageURL,
	})
}

func (c *Cave) UpdateMenuItem(ctx context.Context, id string, u MenuItemUpdate) error {
	fields := map[string]any{}
	setIf(fields, "categoryId", u.CategoryID)
	setIf(fields, "name", u.Name)
	setIf(fields, "description", u.Description)
	setIf(fields, "imageUrl", u.ImageURL)
	return c.items.Update(ctx, id, fields)
}

func (c *Cave) DeleteMenuItem(ctx context.Context, id string) error {
	return c.items.Delete(ctx, id)
}

// Events, sorted ascending by date string.

// EventParams carries the fields of a new event.
type EventParams struct {
	Title       string
	Date        string
	Location    string
	ImageURL    string
	Description string
	LinkURL     string
}

// EventUpdate carries a partial event edit.
type EventUpdate struct {
	Title       *string
	Date        *string
	Location    *string
	ImageURL    *string
	Description *string
	LinkURL     *string
}

func (c *Cave) Events(ctx context.Context) []cave.Event {
	events := c.events.List(ctx)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events
}

func (c *Cave) AddEvent(ctx context.Context, p EventParams) (string, error) {
	return c.events.Add(ctx, map[string]any{
		"title": p.Title, "date": p.Date, "location": p.Location,
		"imageUrl": p.ImageURL, "description": p.Description, "linkUrl": p.LinkURL,
	})
}

func (c *Cave) UpdateEvent(ctx context.Context, id string, u EventUpdate) error {
	fields := map[string]any{}
	setIf(fields, "title", u.Title)
	setIf(fields, "date", u.Date)
	setIf(fields, "location", u.Location)
	setIf(fields, "imageUrl", u.ImageURL)
	setIf(fields, "description", u.Description)
	setIf(fields, "linkUrl", u.LinkURL)
	return c.events.Update(ctx, id, fields)
}

func (c *Cave) DeleteEvent(ctx context.Context, id string) error {
	return c.events.Delete(ctx, id)
}
