package projections

import (
	"context"
	"html/template"

	"haircoolest/internal/content"
)

// PlaygroundView is one playground attraction card.
type PlaygroundView struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// MenuItemView is one dish or drink on the cafe menu.
type MenuItemView struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// MenuSectionView is one menu category with the items homed under it.
// Items whose category was deleted simply do not appear in any section.
type MenuSectionView struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Order int            `json:"order"`
	Items []MenuItemView `json:"items"`
}

// EventView is one upcoming or past event card.
type EventView struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	LinkURL     string `json:"linkUrl"`
}

// CavePage is the view model of the Cave cafe page.
type CavePage struct {
	Title          string            `json:"title"`
	Subtitle       string            `json:"subtitle"`
	HeaderImage    string            `json:"headerImage"`
	BioHTML        template.HTML     `json:"bioHtml"`
	BioImage       string            `json:"bioImage"`
	TaglineText    string            `json:"taglineText"`
	DisclaimerText string            `json:"disclaimerText"`
	Playground     []PlaygroundView  `json:"playground"`
	Gallery        []string          `json:"gallery"`
	Menu           []MenuSectionView `json:"menu"`
	Events         []EventView       `json:"events"`
}

// CavePageDeps holds dependencies for the Cave page projection.
type CavePageDeps struct {
	Cave *content.Cave
}

// QueryCavePage assembles the Cave page view model.
// POST: Menu sections keep the category ordering from the content layer;
// events arrive sorted ascending by date
func QueryCavePage(ctx context.Context, deps CavePageDeps) CavePage {
	c := deps.Cave
	page := CavePage{
		Title:          fallbackCaveTitle,
		HeaderImage:    fallbackCaveHeader,
		BioImage:       fallbackCaveBioImage,
		TaglineText:    fallbackCaveTagline,
		DisclaimerText: fallbackCaveDisclaimer,
		Playground:     fallbackPlayground(),
		Gallery:        fallbackCaveGallery(),
	}

	bioText := fallbackCaveBioText
	fanOut(
		func() { page.Title = orDefault(c.Title(ctx), page.Title) },
		func() { page.Subtitle = c.Subtitle(ctx) },
		func() { page.HeaderImage = orDefault(c.HeaderImage(ctx), page.HeaderImage) },
		func() { bioText = orDefault(c.BioText(ctx), bioText) },
		func() { page.BioImage = orDefault(c.BioImage(ctx), page.BioImage) },
		func() { page.TaglineText = orDefault(c.TaglineText(ctx), page.TaglineText) },
		func() { page.DisclaimerText = orDefault(c.DisclaimerText(ctx), page.DisclaimerText) },
		func() {
			items := c.PlaygroundItems(ctx)
			if len(items) == 0 {
				return
			}
			views := make([]PlaygroundView, 0, len(items))
			for _, item := range items {
				views = append(views, PlaygroundView{ID: item.ID, Name: item.Name, ImageURL: item.ImageURL})
			}
			page.Playground = views
		},
		func() {
			images := c.GalleryImages(ctx)
			if len(images) == 0 {
				return
			}
			urls := make([]string, 0, len(images))
			for _, img := range images {
				urls = append(urls, img.ImageURL)
			}
			page.Gallery = urls
		},
		func() {
			categories := c.MenuCategories(ctx)
			items := c.MenuItems(ctx)
			sections := make([]MenuSectionView, 0, len(categories))
			for _, cat := range categories {
				section := MenuSectionView{ID: cat.ID, Name: cat.Name, Order: cat.Order, Items: []MenuItemView{}}
				for _, item := range items {
					if item.CategoryID != cat.ID {
						continue
					}
					section.Items = append(section.Items, MenuItemView{
						ID: item.ID, Name: item.Name, Description: item.Description, ImageURL: item.ImageURL,
					})
				}
				sections = append(sections, section)
			}
			page.Menu = sections
		},
		func() {
			events := c.Events(ctx)
			views := make([]EventView, 0, len(events))
			for _, e := range events {
				views = append(views, EventView{
					ID: e.ID, Title: e.Title, Date: e.Date, Location: e.Location,
					ImageURL: e.ImageURL, Description: e.Description, LinkURL: e.LinkURL,
				})
			}
			page.Events = views
		},
	)

	page.BioHTML = renderMarkdown(bioText)
	return page
}
