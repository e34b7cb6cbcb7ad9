package projections

import (
	"context"

	"haircoolest/internal/content"
)

// ContactPage is the view model of the contact page: the booking form's
// surrounding copy plus every way to reach the shop.
type ContactPage struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Instagram   string `json:"instagram"`
	WhatsApp    string `json:"whatsapp"`
	MapKuningan string `json:"mapKuningan"`
	MapPetojo   string `json:"mapPetojo"`
}

// ContactPageDeps holds dependencies for the contact page projection.
type ContactPageDeps struct {
	Site *content.Site
}

// QueryContactPage assembles the contact page view model.
func QueryContactPage(ctx context.Context, deps ContactPageDeps) ContactPage {
	page := ContactPage{
		Email:       fallbackEmail,
		Phone:       fallbackPhone,
		Instagram:   fallbackInstagram,
		WhatsApp:    fallbackWhatsApp,
		MapKuningan: fallbackMapKuningan,
		MapPetojo:   fallbackMapPetojo,
	}

	fanOut(
		func() { page.Email = orDefault(deps.Site.Field(ctx, "email"), page.Email) },
		func() { page.Instagram = orDefault(deps.Site.Field(ctx, "instagram"), page.Instagram) },
		func() { page.MapKuningan = orDefault(deps.Site.Field(ctx, "map_kuningan"), page.MapKuningan) },
		func() { page.MapPetojo = orDefault(deps.Site.Field(ctx, "map_petojo"), page.MapPetojo) },
	)

	return page
}
