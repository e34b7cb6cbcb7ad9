package projections

import (
	"context"

	"haircoolest/internal/content"
)

// HomePage is the view model of the landing page: the barber lineup, the
// results gallery and the static price list, plus the contact links the
// footer renders on every page.
type HomePage struct {
	Barbers    []BarberView    `json:"barbers"`
	Gallery    []string        `json:"gallery"`
	Hairstyles []HairstyleView `json:"hairstyles"`
	Email      string          `json:"email"`
	Instagram  string          `json:"instagram"`
	Phone      string          `json:"phone"`
	WhatsApp   string          `json:"whatsapp"`
	BookNowURL string          `json:"bookNowUrl"`
}

// HomePageDeps holds dependencies for the home page projection.
type HomePageDeps struct {
	Sanctuary *content.Sanctuary
	Site      *content.Site
}

// QueryHomePage assembles the landing page view model. The price list is
// launch content only; barbers and gallery share the Sanctuary collections.
func QueryHomePage(ctx context.Context, deps HomePageDeps) HomePage {
	page := HomePage{
		Barbers:    fallbackBarbers(),
		Gallery:    fallbackResultGallery(),
		Hairstyles: fallbackHairstyles(),
		Email:      fallbackEmail,
		Instagram:  fallbackInstagram,
		Phone:      fallbackPhone,
		WhatsApp:   fallbackWhatsApp,
		BookNowURL: fallbackBookNowURL,
	}

	fanOut(
		func() {
			barbers := deps.Sanctuary.Barbers(ctx)
			if len(barbers) == 0 {
				return
			}
			views := make([]BarberView, 0, len(barbers))
			for _, b := range barbers {
				views = append(views, BarberView{ID: b.ID, Name: b.Name, Position: b.Position, ImageURL: b.ImageURL})
			}
			page.Barbers = views
		},
		func() {
			images := deps.Sanctuary.GalleryImages(ctx)
			if len(images) == 0 {
				return
			}
			urls := make([]string, 0, len(images))
			for _, img := range images {
				urls = append(urls, img.ImageURL)
			}
			page.Gallery = urls
		},
		func() { page.Email = orDefault(deps.Site.Field(ctx, "email"), page.Email) },
		func() { page.Instagram = orDefault(deps.Site.Field(ctx, "instagram"), page.Instagram) },
	)

	return page
}
