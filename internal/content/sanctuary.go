package content

import (
	"context"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/domain/sanctuary"
)

// Sanctuary manages the Sanctuary page: header texts and images, the main
// video, and the barbers / gallery / videos / awards collections.
type Sanctuary struct {
	settings *Settings
	barbers  *Repository[sanctuary.Barber]
	gallery  *Repository[sanctuary.GalleryImage]
	videos   *Repository[sanctuary.Video]
	awards   *Repository[sanctuary.Award]
}

// NewSanctuary wires the Sanctuary module against the document store.
func NewSanctuary(store docstore.Store) *Sanctuary {
	return &Sanctuary{
		settings: NewSettings(store, "sanctuary"),
		barbers:  NewRepository(store, "barbers", sanctuary.BarberFromDocument),
		gallery:  NewRepository(store, "gallery", sanctuary.GalleryImageFromDocument),
		videos:   NewRepository(store, "videos", sanctuary.VideoFromDocument),
		awards:   NewRepository(store, "awards", sanctuary.AwardFromDocument),
	}
}

// Text content: title, subtitle, history, disclaimer.

func (s *Sanctuary) Title(ctx context.Context) string    { return s.settings.Field(ctx, "title") }
func (s *Sanctuary) Subtitle(ctx context.Context) string { return s.settings.Field(ctx, "subtitle") }
func (s *Sanctuary) HistoryText(ctx context.Context) string {
	return s.settings.Field(ctx, "historyText")
}
func (s *Sanctuary) DisclaimerText(ctx context.Context) string {
	return s.settings.Field(ctx, "disclaimerText")
}

func (s *Sanctuary) SetTitle(ctx context.Context, v string) bool {
	return s.settings.SetField(ctx, "title", v)
}
func (s *Sanctuary) SetSubtitle(ctx context.Context, v string) bool {
	return s.settings.SetField(ctx, "subtitle", v)
}
func (s *Sanctuary) SetHistoryText(ctx context.Context, v string) bool {
	return s.settings.SetField(ctx, "historyText", v)
}
func (s *Sanctuary) SetDisclaimerText(ctx context.Context, v string) bool {
	return s.settings.SetField(ctx, "disclaimerText", v)
}

// Image fields: header and sanctuary section images.

func (s *Sanctuary) HeaderImage(ctx context.Context) string {
	return s.settings.Field(ctx, "headerImage")
}
func (s *Sanctuary) SanctuaryImage(ctx context.Context) string {
	return s.settings.Field(ctx, "sanctuaryImage")
}
func (s *Sanctuary) SetHeaderImage(ctx context.Context, url string) bool {
	return s.settings.SetField(ctx, "headerImage", url)
}
func (s *Sanctuary) SetSanctuaryImage(ctx context.Context, url string) bool {
	return s.settings.SetField(ctx, "sanctuaryImage", url)
}

// Video section: caption, standalone URL, and the featured main video.

func (s *Sanctuary) VideoTitle(ctx context.Context) string {
	return s.settings.Field(ctx, "videoTitle")
}
func (s *Sanctuary) SetVideoTitle(ctx context.Context, v string) bool {
	return s.settings.SetField(ctx, "videoTitle", v)
}
func (s *Sanctuary) VideoURL(ctx context.Context) string {
	return s.settings.Field(ctx, "videoUrl")
}
func (s *Sanctuary) SetVideoURL(ctx context.Context, v string) bool {
	return s.settings.SetField(ctx, "videoUrl", v)
}

// MainVideo returns the featured video, accepting the legacy plain-URL form.
// POST: ok=false when unset or unreadable (never an error)
func (s *Sanctuary) MainVideo(ctx context.Context) (sanctuary.MainVideo, bool) {
	return sanctuary.MainVideoFromValue(s.settings.Value(ctx, "mainVideo"))
}

// SetMainVideo stores the featured video; nil clears it.
func (s *Sanctuary) SetMainVideo(ctx context.Context, mv *sanctuary.MainVideo) bool {
	if mv == nil {
		return s.settings.SetValue(ctx, "mainVideo", nil)
	}
	return s.settings.SetValue(ctx, "mainVideo", map[string]any{"id": mv.ID, "url": mv.URL})
}

// Barbers collection.

// BarberParams carries the fields of a new barber.
type BarberParams struct {
	Name     string
	Position string
	ImageURL string
}

// BarberUpdate carries a partial barber edit; nil fields are left unchanged.
type BarberUpdate struct {
	Name     *string
	Position *string
	ImageURL *string
}

func (s *Sanctuary) Barbers(ctx context.Context) []sanctuary.Barber {
	return s.barbers.List(ctx)
}

func (s *Sanctuary) AddBarber(ctx context.Context, p BarberParams) (string, error) {
	return s.barbers.Add(ctx, map[string]any{
		"name": p.Name, "position": p.Position, "imageUrl": p.ImageURL,
	})
}

func (s *Sanctuary) UpdateBarber(ctx context.Context, id string, u BarberUpdate) error {
	fields := map[string]any{}
	setIf(fields, "name", u.Name)
	setIf(fields, "position", u.Position)
	setIf(fields, "imageUrl", u.ImageURL)
	return s.barbers.Update(ctx, id, fields)
}

func (s *Sanctuary) DeleteBarber(ctx context.Context, id string) error {
	return s.barbers.Delete(ctx, id)
}

// Gallery collection: add and delete only, no edits.

func (s *Sanctuary) GalleryImages(ctx context.Context) []sanctuary.GalleryImage {
	return s.gallery.List(ctx)
}

func (s *Sanctuary) AddGalleryImage(ctx context.Context, imageURL string) (string, error) {
	return s.gallery.Add(ctx, map[string]any{"imageUrl": imageURL})
}

func (s *Sanctuary) DeleteGalleryImage(ctx context.Context, id string) error {
	return s.gallery.Delete(ctx, id)
}

// Videos collection: add and delete only.

func (s *Sanctuary) Videos(ctx context.Context) []sanctuary.Video {
	return s.videos.List(ctx)
}

func (s *Sanctuary) AddVideo(ctx context.Context, url string) (string, error) {
	return s.videos.Add(ctx, map[string]any{"url": url})
}

func (s *Sanctuary) DeleteVideo(ctx context.Context, id string) error {
	return s.videos.Delete(ctx, id)
}

// Awards collection: only the name is editable after creation.

func (s *Sanctuary) Awards(ctx context.Context) []sanctuary.Award {
	return s.awards.List(ctx)
}

func (s *Sanctuary) AddAward(ctx context.Context, name, imageURL string) (string, error) {
	return s.awards.Add(ctx, map[string]any{"name": name, "imageUrl": imageURL})
}

func (s *Sanctuary) UpdateAward(ctx context.Context, id, name string) error {
	return s.awards.Update(ctx, id, map[string]any{"name": name})
}

func (s *Sanctuary) DeleteAward(ctx context.Context, id string) error {
	return s.awards.Delete(ctx, id)
}
