package projections

import (
	"context"
	"html/template"

	"haircoolest/internal/content"
)

// BarberView is one entry in the barber lineup.
type BarberView struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Position string `json:"position"`
	ImageURL string `json:"imageUrl"`
}

// AwardView is one partner or award logo.
type AwardView struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// MainVideoView is the featured video of the Sanctuary page.
type MainVideoView struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SanctuaryPage is the view model of the Sanctuary page.
type SanctuaryPage struct {
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle"`
	HistoryHTML    template.HTML  `json:"historyHtml"`
	DisclaimerText string         `json:"disclaimerText"`
	HeaderImage    string         `json:"headerImage"`
	SanctuaryImage string         `json:"sanctuaryImage"`
	VideoTitle     string         `json:"videoTitle"`
	VideoURL       string         `json:"videoUrl"`
	MainVideo      *MainVideoView `json:"mainVideo,omitempty"`
	Barbers        []BarberView   `json:"barbers"`
	Gallery        []string       `json:"gallery"`
	Videos         []string       `json:"videos"`
	Awards         []AwardView    `json:"awards"`
}

// SanctuaryPageDeps holds dependencies for the Sanctuary page projection.
type SanctuaryPageDeps struct {
	Sanctuary *content.Sanctuary
}

// QuerySanctuaryPage assembles the Sanctuary page view model.
// POST: Every field holds either stored content or its launch fallback
func QuerySanctuaryPage(ctx context.Context, deps SanctuaryPageDeps) SanctuaryPage {
	s := deps.Sanctuary
	page := SanctuaryPage{
		Title:          fallbackSanctuaryTitle,
		HeaderImage:    fallbackSanctuaryHeader,
		SanctuaryImage: fallbackSanctuaryImage,
		Barbers:        fallbackBarbers(),
		Gallery:        fallbackResultGallery(),
		Awards:         fallbackAwards(),
	}

	var historyText string
	fanOut(
		func() { page.Title = orDefault(s.Title(ctx), page.Title) },
		func() { page.Subtitle = s.Subtitle(ctx) },
		func() { historyText = s.HistoryText(ctx) },
		func() { page.DisclaimerText = s.DisclaimerText(ctx) },
		func() { page.HeaderImage = orDefault(s.HeaderImage(ctx), page.HeaderImage) },
		func() { page.SanctuaryImage = orDefault(s.SanctuaryImage(ctx), page.SanctuaryImage) },
		func() { page.VideoTitle = s.VideoTitle(ctx) },
		func() { page.VideoURL = s.VideoURL(ctx) },
		func() {
			if mv, ok := s.MainVideo(ctx); ok {
				page.MainVideo = &MainVideoView{ID: mv.ID, URL: mv.URL}
			}
		},
		func() {
			barbers := s.Barbers(ctx)
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
			images := s.GalleryImages(ctx)
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
			videos := s.Videos(ctx)
			urls := make([]string, 0, len(videos))
			for _, v := range videos {
				urls = append(urls, v.URL)
			}
			page.Videos = urls
		},
		func() {
			awards := s.Awards(ctx)
			if len(awards) == 0 {
				return
			}
			views := make([]AwardView, 0, len(awards))
			for _, a := range awards {
				views = append(views, AwardView{ID: a.ID, Name: a.Name, ImageURL: a.ImageURL})
			}
			page.Awards = views
		},
	)

	page.HistoryHTML = renderMarkdown(historyText)
	return page
}
