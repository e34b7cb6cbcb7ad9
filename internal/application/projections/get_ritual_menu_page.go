package projections

import (
	"context"

	"haircoolest/internal/content"
)

// ServiceView is one service card on the Ritual Menu page.
type ServiceView struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

// MembershipView is one membership tier.
type MembershipView struct {
	ID       string   `json:"id,omitempty"`
	Duration string   `json:"duration"`
	Benefits []string `json:"benefits"`
	ImageURL string   `json:"imageUrl"`
}

// RitualMenuPage is the view model of the Ritual Menu page.
type RitualMenuPage struct {
	Title          string           `json:"title"`
	Subtitle       string           `json:"subtitle"`
	HeaderImage    string           `json:"headerImage"`
	BookingTitle   string           `json:"bookingTitle"`
	BookingCtaText string           `json:"bookingCtaText"`
	Services       []ServiceView    `json:"services"`
	Memberships    []MembershipView `json:"memberships"`
}

// RitualMenuPageDeps holds dependencies for the Ritual Menu page projection.
type RitualMenuPageDeps struct {
	RitualMenu *content.RitualMenu
}

// QueryRitualMenuPage assembles the Ritual Menu page view model.
// POST: Services keep their order-key sorting from the content layer
func QueryRitualMenuPage(ctx context.Context, deps RitualMenuPageDeps) RitualMenuPage {
	m := deps.RitualMenu
	page := RitualMenuPage{
		Title:          fallbackRitualTitle,
		Subtitle:       fallbackRitualSubtitle,
		HeaderImage:    fallbackRitualHeader,
		BookingTitle:   fallbackBookingTitle,
		BookingCtaText: fallbackBookingCtaText,
		Services:       fallbackServices(),
		Memberships:    fallbackMemberships(),
	}

	fanOut(
		func() { page.Title = orDefault(m.Title(ctx), page.Title) },
		func() { page.Subtitle = orDefault(m.Subtitle(ctx), page.Subtitle) },
		func() { page.HeaderImage = orDefault(m.HeaderImage(ctx), page.HeaderImage) },
		func() { page.BookingTitle = orDefault(m.BookingTitle(ctx), page.BookingTitle) },
		func() { page.BookingCtaText = orDefault(m.BookingCtaText(ctx), page.BookingCtaText) },
		func() {
			services := m.Services(ctx)
			if len(services) == 0 {
				return
			}
			views := make([]ServiceView, 0, len(services))
			for _, svc := range services {
				views = append(views, ServiceView{
					ID: svc.ID, Name: svc.Name, Description: svc.Description,
					ImageURL: svc.ImageURL, Order: svc.Order,
				})
			}
			page.Services = views
		},
		func() {
			memberships := m.Memberships(ctx)
			if len(memberships) == 0 {
				return
			}
			views := make([]MembershipView, 0, len(memberships))
			for _, tier := range memberships {
				benefits := tier.Benefits
				if benefits == nil {
					benefits = []string{}
				}
				views = append(views, MembershipView{
					ID: tier.ID, Duration: tier.Duration, Benefits: benefits, ImageURL: tier.ImageURL,
				})
			}
			page.Memberships = views
		},
	)

	return page
}
