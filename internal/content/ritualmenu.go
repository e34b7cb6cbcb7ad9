package content

import (
	"context"
	"sort"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/domain/ritualmenu"
)

// RitualMenu manages the Ritual Menu page: header texts, the booking CTA,
// and the services / memberships collections.
type RitualMenu struct {
	settings    *Settings
	services    *Repository[ritualmenu.Service]
	memberships *Repository[ritualmenu.Membership]
}

// NewRitualMenu wires the RitualMenu module against the document store.
func NewRitualMenu(store docstore.Store) *RitualMenu {
	return &RitualMenu{
		settings:    NewSettings(store, "ritual-menus"),
		services:    NewRepository(store, "ritual-services", ritualmenu.ServiceFromDocument),
		memberships: NewRepository(store, "ritual-memberships", ritualmenu.MembershipFromDocument),
	}
}

func (m *RitualMenu) Title(ctx context.Context) string    { return m.settings.Field(ctx, "title") }
func (m *RitualMenu) Subtitle(ctx context.Context) string { return m.settings.Field(ctx, "subtitle") }
func (m *RitualMenu) HeaderImage(ctx context.Context) string {
	return m.settings.Field(ctx, "headerImage")
}
func (m *RitualMenu) BookingTitle(ctx context.Context) string {
	return m.settings.Field(ctx, "bookingTitle")
}
func (m *RitualMenu) BookingCtaText(ctx context.Context) string {
	return m.settings.Field(ctx, "bookingCtaText")
}

func (m *RitualMenu) SetTitle(ctx context.Context, v string) bool {
	return m.settings.SetField(ctx, "title", v)
}
func (m *RitualMenu) SetSubtitle(ctx context.Context, v string) bool {
	return m.settings.SetField(ctx, "subtitle", v)
}
func (m *RitualMenu) SetHeaderImage(ctx context.Context, url string) bool {
	return m.settings.SetField(ctx, "headerImage", url)
}
func (m *RitualMenu) SetBookingTitle(ctx context.Context, v string) bool {
	return m.settings.SetField(ctx, "bookingTitle", v)
}
func (m *RitualMenu) SetBookingCtaText(ctx context.Context, v string) bool {
	return m.settings.SetField(ctx, "bookingCtaText", v)
}

// Services collection, sorted by the advisory order key.

// ServiceParams carries the fields of a new service.
type ServiceParams struct {
	Name        string
	Description string
	ImageURL    string
	Order       int
}

// ServiceUpdate carries a partial service edit; nil fields are unchanged.
type ServiceUpdate struct {
	Name        *string
	Description *string
	ImageURL    *string
	Order       *int
}

// Services returns all services sorted by order, then name.
// Order values are advisory and need not be unique.
func (m *RitualMenu) Services(ctx context.Context) []ritualmenu.Service {
	services := m.services.List(ctx)
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].Order != services[j].Order {
			return services[i].Order < services[j].Order
		}
		return services[i].Name < services[j].Name
	})
	return services
}

func (m *RitualMenu) AddService(ctx context.Context, p ServiceParams) (string, error) {
	return m.services.Add(ctx, map[string]any{
		"name": p.Name, "description": p.Description, "imageUrl": p.ImageURL, "order": p.Order,
	})
}

func (m *RitualMenu) UpdateService(ctx context.Context, id string, u ServiceUpdate) error {
	fields := map[string]any{}
	setIf(fields, "name", u.Name)
	setIf(fields, "description", u.Description)
	setIf(fields, "imageUrl", u.ImageURL)
	setIf(fields, "order", u.Order)
	return m.services.Update(ctx, id, fields)
}

func (m *RitualMenu) DeleteService(ctx context.Context, id string) error {
	return m.services.Delete(ctx, id)
}

// Memberships collection.

// MembershipParams carries the fields of a new membership tier.
type MembershipParams struct {
	Duration string
	Benefits []string
	ImageURL string
}

// MembershipUpdate carries a partial membership edit.
type MembershipUpdate struct {
	Duration *string
	Benefits *[]string
	ImageURL *string
}

func (m *RitualMenu) Memberships(ctx context.Context) []ritualmenu.Membership {
	return m.memberships.List(ctx)
}

func (m *RitualMenu) AddMembership(ctx context.Context, p MembershipParams) (string, error) {
	benefits := p.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return m.memberships.Add(ctx, map[string]any{
		"duration": p.Duration, "benefits": benefits, "imageUrl": p.ImageURL,
	})
}

func (m *RitualMenu) UpdateMembership(ctx context.Context, id string, u MembershipUpdate) error {
	fields := map[string]any{}
	setIf(fields, "duration", u.Duration)
	setIf(fields, "benefits", u.Benefits)
	setIf(fields, "imageUrl", u.ImageURL)
	return m.memberships.Update(ctx, id, fields)
}

func (m *RitualMenu) DeleteMembership(ctx context.Context, id string) error {
	return m.memberships.Delete(ctx, id)
}
