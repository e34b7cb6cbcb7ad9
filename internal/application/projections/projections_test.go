package projections

import (
	"context"
	"errors"
	"strings"
	"testing"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/content"
)

// TestQuerySanctuaryPage_FallbacksWhenEmpty tests that an empty store
// renders the launch content.
func TestQuerySanctuaryPage_FallbacksWhenEmpty(t *testing.T) {
	store := docstore.NewMemoryStore()
	page := QuerySanctuaryPage(context.Background(), SanctuaryPageDeps{Sanctuary: content.NewSanctuary(store)})

	if page.Title != "Haircoolest Barbershop" {
		t.Errorf("expected fallback title, got %q", page.Title)
	}
	if len(page.Barbers) != 6 {
		t.Errorf("expected 6 fallback barbers, got %d", len(page.Barbers))
	}
	if page.HeaderImage == "" {
		t.Error("expected fallback header image")
	}
	if page.MainVideo != nil {
		t.Error("expected no main video on empty store")
	}
}

// TestQuerySanctuaryPage_StoredContentOverwrites tests the hydration path.
func TestQuerySanctuaryPage_StoredContentOverwrites(t *testing.T) {
	store := docstore.NewMemoryStore()
	sanctuary := content.NewSanctuary(store)
	ctx := context.Background()

	if !sanctuary.SetTitle(ctx, "The Sanctuary") {
		t.Fatal("expected SetTitle to succeed")
	}
	if _, err := sanctuary.AddBarber(ctx, content.BarberParams{Name: "Dimas", Position: "senior barber"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := QuerySanctuaryPage(ctx, SanctuaryPageDeps{Sanctuary: sanctuary})
	if page.Title != "The Sanctuary" {
		t.Errorf("expected stored title, got %q", page.Title)
	}
	if len(page.Barbers) != 1 || page.Barbers[0].Name != "Dimas" {
		t.Errorf("expected stored barber lineup, got %+v", page.Barbers)
	}
}

// TestQuerySanctuaryPage_LegacyMainVideo tests the plain-string main video
// form stored before the {id, url} object existed.
func TestQuerySanctuaryPage_LegacyMainVideo(t *testing.T) {
	store := docstore.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, "admin", "sanctuary", map[string]any{"mainVideo": "https://youtu.be/abc123"}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := QuerySanctuaryPage(ctx, SanctuaryPageDeps{Sanctuary: content.NewSanctuary(store)})
	if page.MainVideo == nil {
		t.Fatal("expected main video")
	}
	if page.MainVideo.URL != "https://youtu.be/abc123" {
		t.Errorf("unexpected url: %q", page.MainVideo.URL)
	}
}

// TestQuerySanctuaryPage_MarkdownRendered tests the history section pipeline.
func TestQuerySanctuaryPage_MarkdownRendered(t *testing.T) {
	store := docstore.NewMemoryStore()
	sanctuary := content.NewSanctuary(store)
	ctx := context.Background()
	sanctuary.SetHistoryText(ctx, "Berdiri sejak **2019** di Jakarta.")

	page := QuerySanctuaryPage(ctx, SanctuaryPageDeps{Sanctuary: sanctuary})
	if !strings.Contains(string(page.HistoryHTML), "<strong>2019</strong>") {
		t.Errorf("expected rendered markdown, got %q", page.HistoryHTML)
	}
}

// TestQuerySanctuaryPage_StoreFailureKeepsFallbacks tests that an
// unreachable store degrades to the launch content instead of erroring.
func TestQuerySanctuaryPage_StoreFailureKeepsFallbacks(t *testing.T) {
	store := docstore.NewMemoryStore()
	store.Fail(errors.New("store unreachable"))

	page := QuerySanctuaryPage(context.Background(), SanctuaryPageDeps{Sanctuary: content.NewSanctuary(store)})
	if page.Title != "Haircoolest Barbershop" {
		t.Errorf("expected fallback title, got %q", page.Title)
	}
	if len(page.Gallery) == 0 {
		t.Error("expected fallback gallery")
	}
}

// TestQueryRitualMenuPage_Fallbacks tests the Ritual Menu launch content.
func TestQueryRitualMenuPage_Fallbacks(t *testing.T) {
	store := docstore.NewMemoryStore()
	page := QueryRitualMenuPage(context.Background(), RitualMenuPageDeps{RitualMenu: content.NewRitualMenu(store)})

	if page.Title != "Ritual Menu's" {
		t.Errorf("expected fallback title, got %q", page.Title)
	}
	if page.BookingCtaText != "Hubungi Kami" {
		t.Errorf("expected fallback CTA, got %q", page.BookingCtaText)
	}
	if len(page.Memberships) != 3 {
		t.Errorf("expected 3 fallback tiers, got %d", len(page.Memberships))
	}
}

// TestQueryRitualMenuPage_StoredServicesReplaceFallback tests hydration and
// that the order key carries through.
func TestQueryRitualMenuPage_StoredServicesReplaceFallback(t *testing.T) {
	store := docstore.NewMemoryStore()
	menu := content.NewRitualMenu(store)
	ctx := context.Background()

	if _, err := menu.AddService(ctx, content.ServiceParams{Name: "Royal Shave", Order: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := menu.AddService(ctx, content.ServiceParams{Name: "Classic Cut", Order: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := QueryRitualMenuPage(ctx, RitualMenuPageDeps{RitualMenu: menu})
	if len(page.Services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(page.Services))
	}
	if page.Services[0].Name != "Classic Cut" {
		t.Errorf("expected order-sorted services, got %q first", page.Services[0].Name)
	}
}

// TestQueryCavePage_MenuGrouping tests that items land under their category
// and orphaned items are left out.
func TestQueryCavePage_MenuGrouping(t *testing.T) {
	store := docstore.NewMemoryStore()
	cave := content.NewCave(store)
	ctx := context.Background()

	catID, err := cave.AddMenuCategory(ctx, "Coffee", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cave.AddMenuItem(ctx, content.MenuItemParams{CategoryID: catID, Name: "Espresso"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cave.AddMenuItem(ctx, content.MenuItemParams{CategoryID: "deleted-category", Name: "Orphan Latte"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := QueryCavePage(ctx, CavePageDeps{Cave: cave})
	if len(page.Menu) != 1 {
		t.Fatalf("expected 1 menu section, got %d", len(page.Menu))
	}
	section := page.Menu[0]
	if section.Name != "Coffee" || len(section.Items) != 1 || section.Items[0].Name != "Espresso" {
		t.Errorf("unexpected section: %+v", section)
	}
}

// TestQueryCavePage_BioDefaultsAndTagline tests the Cave launch content.
func TestQueryCavePage_BioDefaultsAndTagline(t *testing.T) {
	store := docstore.NewMemoryStore()
	page := QueryCavePage(context.Background(), CavePageDeps{Cave: content.NewCave(store)})

	if page.Title != "Cave Haircoolest" {
		t.Errorf("expected fallback title, got %q", page.Title)
	}
	if page.TaglineText != "Pantang Pulang Sebelum Kenyang" {
		t.Errorf("expected fallback tagline, got %q", page.TaglineText)
	}
	if !strings.Contains(string(page.BioHTML), "barbershop dan cafe") {
		t.Errorf("expected fallback bio, got %q", page.BioHTML)
	}
	if len(page.Playground) != 2 {
		t.Errorf("expected 2 fallback playground items, got %d", len(page.Playground))
	}
}

// TestQueryContactPage_SiteFieldsOverwrite tests site settings hydration.
func TestQueryContactPage_SiteFieldsOverwrite(t *testing.T) {
	store := docstore.NewMemoryStore()
	site := content.NewSite(store)
	ctx := context.Background()
	site.SetField(ctx, "email", "halo@haircoolest.com")

	page := QueryContactPage(ctx, ContactPageDeps{Site: site})
	if page.Email != "halo@haircoolest.com" {
		t.Errorf("expected stored email, got %q", page.Email)
	}
	if page.MapKuningan != "https://g.co/kgs/G5jjQpA" {
		t.Errorf("expected fallback map link, got %q", page.MapKuningan)
	}
}

// TestQueryHomePage_StaticPriceList tests that the price list always renders.
func TestQueryHomePage_StaticPriceList(t *testing.T) {
	store := docstore.NewMemoryStore()
	page := QueryHomePage(context.Background(), HomePageDeps{
		Sanctuary: content.NewSanctuary(store),
		Site:      content.NewSite(store),
	})

	if len(page.Hairstyles) != 9 {
		t.Errorf("expected 9 price-list entries, got %d", len(page.Hairstyles))
	}
	if page.WhatsApp == "" || page.BookNowURL == "" {
		t.Error("expected contact links to be pre-filled")
	}
}
