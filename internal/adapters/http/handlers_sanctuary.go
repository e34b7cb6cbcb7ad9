package web

import (
	"net/http"

	"haircoolest/internal/content"
	"haircoolest/internal/domain/sanctuary"
)

// Sanctuary settings document.

type sanctuarySettingsRequest struct {
	Title          *string `json:"title"`
	Subtitle       *string `json:"subtitle"`
	HistoryText    *string `json:"historyText"`
	DisclaimerText *string `json:"disclaimerText"`
	HeaderImage    *string `json:"headerImage"`
	SanctuaryImage *string `json:"sanctuaryImage"`
	VideoTitle     *string `json:"videoTitle"`
	VideoURL       *string `json:"videoUrl"`
}

func handleSanctuarySettingsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := deps.Sanctuary
	resp := map[string]any{
		"title":          s.Title(ctx),
		"subtitle":       s.Subtitle(ctx),
		"historyText":    s.HistoryText(ctx),
		"disclaimerText": s.DisclaimerText(ctx),
		"headerImage":    s.HeaderImage(ctx),
		"sanctuaryImage": s.SanctuaryImage(ctx),
		"videoTitle":     s.VideoTitle(ctx),
		"videoUrl":       s.VideoURL(ctx),
	}
	if mv, ok := s.MainVideo(ctx); ok {
		resp["mainVideo"] = map[string]string{"id": mv.ID, "url": mv.URL}
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleSanctuarySettingsPut(w http.ResponseWriter, r *http.Request) {
	var req sanctuarySettingsRequest
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	s := deps.Sanctuary
	failed := false
	applyField(&failed, req.Title, func(v string) bool { return s.SetTitle(ctx, v) })
	applyField(&failed, req.Subtitle, func(v string) bool { return s.SetSubtitle(ctx, v) })
	applyField(&failed, req.HistoryText, func(v string) bool { return s.SetHistoryText(ctx, v) })
	applyField(&failed, req.DisclaimerText, func(v string) bool { return s.SetDisclaimerText(ctx, v) })
	applyField(&failed, req.HeaderImage, func(v string) bool { return s.SetHeaderImage(ctx, v) })
	applyField(&failed, req.SanctuaryImage, func(v string) bool { return s.SetSanctuaryImage(ctx, v) })
	applyField(&failed, req.VideoTitle, func(v string) bool { return s.SetVideoTitle(ctx, v) })
	applyField(&failed, req.VideoURL, func(v string) bool { return s.SetVideoURL(ctx, v) })
	if failed {
		saveFailed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Featured main video: set and clear are separate verbs so a partial
// settings save can never wipe it by accident.

func handleMainVideoPut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		errorJSON(w, http.StatusBadRequest, "url is required")
		return
	}
	if req.ID == "" {
		req.ID = "main-video"
	}
	if !deps.Sanctuary.SetMainVideo(r.Context(), &sanctuary.MainVideo{ID: req.ID, URL: req.URL}) {
		saveFailed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func handleMainVideoDelete(w http.ResponseWriter, r *http.Request) {
	if !deps.Sanctuary.SetMainVideo(r.Context(), nil) {
		saveFailed(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Barbers collection.

type barberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	ImageURL string `json:"imageUrl"`
}

func handleBarbersList(w http.ResponseWriter, r *http.Request) {
	barbers := deps.Sanctuary.Barbers(r.Context())
	resp := make([]barberResponse, 0, len(barbers))
	for _, b := range barbers {
		resp = append(resp, barberResponse{ID: b.ID, Name: b.Name, Position: b.Position, ImageURL: b.ImageURL})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleBarberCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Position string `json:"position"`
		ImageURL string `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	b := sanctuary.Barber{Name: req.Name, Position: req.Position, ImageURL: req.ImageURL}
	if err := b.Validate(); err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := deps.Sanctuary.AddBarber(r.Context(), content.BarberParams{
		Name: req.Name, Position: req.Position, ImageURL: req.ImageURL,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleBarberUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		Position *string `json:"position"`
		ImageURL *string `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := deps.Sanctuary.UpdateBarber(r.Context(), r.PathValue("id"), content.BarberUpdate{
		Name: req.Name, Position: req.Position, ImageURL: req.ImageURL,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleBarberDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Sanctuary.DeleteBarber(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Gallery collection: add and delete only.

type imageResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

func handleSanctuaryGalleryList(w http.ResponseWriter, r *http.Request) {
	images := deps.Sanctuary.GalleryImages(r.Context())
	resp := make([]imageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, imageResponse{ID: img.ID, ImageURL: img.ImageURL})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleSanctuaryGalleryCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ImageURL == "" {
		errorJSON(w, http.StatusBadRequest, "imageUrl is required")
		return
	}
	id, err := deps.Sanctuary.AddGalleryImage(r.Context(), req.ImageURL)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleSanctuaryGalleryDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Sanctuary.DeleteGalleryImage(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Videos collection: add and delete only.

type videoResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func handleVideosList(w http.ResponseWriter, r *http.Request) {
	videos := deps.Sanctuary.Videos(r.Context())
	resp := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, videoResponse{ID: v.ID, URL: v.URL})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleVideoCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		errorJSON(w, http.StatusBadRequest, "url is required")
		return
	}
	id, err := deps.Sanctuary.AddVideo(r.Context(), req.URL)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleVideoDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Sanctuary.DeleteVideo(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Awards collection: only the name is editable after creation.

type awardResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

func handleAwardsList(w http.ResponseWriter, r *http.Request) {
	awards := deps.Sanctuary.Awards(r.Context())
	resp := make([]awardResponse, 0, len(awards))
	for _, a := range awards {
		resp = append(resp, awardResponse{ID: a.ID, Name: a.Name, ImageURL: a.ImageURL})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleAwardCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		ImageURL string `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "name is required")
		return
	}
	id, err := deps.Sanctuary.AddAward(r.Context(), req.Name, req.ImageURL)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleAwardUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := deps.Sanctuary.UpdateAward(r.Context(), r.PathValue("id"), req.Name); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleAwardDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Sanctuary.DeleteAward(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
