package web

import (
	"net/http"

	"haircoolest/internal/content"
)

// Cave settings document.

type caveSettingsRequest struct {
	Title          *string `json:"title"`
	Subtitle       *string `json:"subtitle"`
	HeaderImage    *string `json:"headerImage"`
	BioText        *string `json:"bioText"`
	BioImage       *string `json:"bioImage"`
	DisclaimerText *string `json:"disclaimerText"`
	TaglineText    *string `json:"taglineText"`
}

func handleCaveSettingsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := deps.Cave
	writeJSON(w, http.StatusOK, map[string]string{
		"title":          c.Title(ctx),
		"subtitle":       c.Subtitle(ctx),
		"headerImage":    c.HeaderImage(ctx),
		"bioText":        c.BioText(ctx),
		"bioImage":       c.BioImage(ctx),
		"disclaimerText": c.DisclaimerText(ctx),
		"taglineText":    c.TaglineText(ctx),
	})
}

func handleCaveSettingsPut(w http.ResponseWriter, r *http.Request) {
	var req caveSettingsRequest
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	c := deps.Cave
	failed := false
	applyField(&failed, req.Title, func(v string) bool { return c.SetTitle(ctx, v) })
	applyField(&failed, req.Subtitle, func(v string) bool { return c.SetSubtitle(ctx, v) })
	applyField(&failed, req.HeaderImage, func(v string) bool { return c.SetHeaderImage(ctx, v) })
	applyField(&failed, req.BioText, func(v string) bool { return c.SetBioText(ctx, v) })
	applyField(&failed, req.BioImage, func(v string) bool { return c.SetBioImage(ctx, v) })
	applyField(&failed, req.DisclaimerText, func(v string) bool { return c.SetDisclaimerText(ctx, v) })
	applyField(&failed, req.TaglineText, func(v string) bool { return c.SetTaglineText(ctx, v) })
	if failed {
		saveFailed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Lounge gallery: add and delete only.

func handleCaveGalleryList(w http.ResponseWriter, r *http.Request) {
	images := deps.Cave.GalleryImages(r.Context())
	resp := make([]imageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, imageResponse{ID: img.ID, ImageURL: img.ImageURL})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleCaveGalleryCreate(w http.ResponseWriter, r *http.Request) {
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
	id, err := deps.Cave.AddGalleryImage(r.Context(), req.ImageURL)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleCaveGalleryDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Cave.DeleteGalleryImage(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Playground showcase.

type playgroundResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

func handlePlaygroundList(w http.ResponseWriter, r *http.Request) {
	items := deps.Cave.PlaygroundItems(r.Context())
	resp := make([]playgroundResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, playgroundResponse{ID: it.ID, Name: it.Name, ImageURL: it.ImageURL})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handlePlaygroundCreate(w http.ResponseWriter, r *http.Request) {
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
	id, err := deps.Cave.AddPlaygroundItem(r.Context(), req.Name, req.ImageURL)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handlePlaygroundUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		ImageURL *string `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := deps.Cave.UpdatePlaygroundItem(r.Context(), r.PathValue("id"), content.PlaygroundUpdate{
		Name: req.Name, ImageURL: req.ImageURL,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handlePlaygroundDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Cave.DeletePlaygroundItem(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Food menu categories.

type menuCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func handleMenuCategoriesList(w http.ResponseWriter, r *http.Request) {
	categories := deps.Cave.MenuCategories(r.Context())
	resp := make([]menuCategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, menuCategoryResponse{ID: c.ID, Name: c.Name, Order: c.Order})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleMenuCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "name is required")
		return
	}
	id, err := deps.Cave.AddMenuCategory(r.Context(), req.Name, req.Order)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleMenuCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  *string `json:"name"`
		Order *int    `json:"order"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := deps.Cave.UpdateMenuCategory(r.Context(), r.PathValue("id"), content.MenuCategoryUpdate{
		Name: req.Name, Order: req.Order,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Deleting a category leaves its items orphaned; the dashboard warns the
// editor before calling this.
func handleMenuCategoryDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Cave.DeleteMenuCategory(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Food menu items.

type menuItemResponse struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func handleMenuItemsList(w http.ResponseWriter, r *http.Request) {
	items := deps.Cave.MenuItems(r.Context())
	resp := make([]menuItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, menuItemResponse{
			ID: it.ID, CategoryID: it.CategoryID, Name: it.Name,
			Description: it.Description, ImageURL: it.ImageURL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleMenuItemCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID  string `json:"categoryId"`
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "name is required")
		return
	}
	id, err := deps.Cave.AddMenuItem(r.Context(), content.MenuItemParams{
		CategoryID: req.CategoryID, Name: req.Name,
		Description: req.Description, ImageURL: req.ImageURL,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleMenuItemUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID  *string `json:"categoryId"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		ImageURL    *string `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := deps.Cave.UpdateMenuItem(r.Context(), r.PathValue("id"), content.MenuItemUpdate{
		CategoryID: req.CategoryID, Name: req.Name,
		Description: req.Description, ImageURL: req.ImageURL,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleMenuItemDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Cave.DeleteMenuItem(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Event calendar.

type eventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	LinkURL     string `json:"linkUrl"`
}

func handleEventsList(w http.ResponseWriter, r *http.Request) {
	events := deps.Cave.Events(r.Context())
	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, eventResponse{
			ID: e.ID, Title: e.Title, Date: e.Date, Location: e.Location,
			ImageURL: e.ImageURL, Description: e.Description, LinkURL: e.LinkURL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleEventCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Location    string `json:"location"`
		ImageURL    string `json:"imageUrl"`
		Description string `json:"description"`
		LinkURL     string `json:"linkUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		errorJSON(w, http.StatusBadRequest, "title is required")
		return
	}
	id, err := deps.Cave.AddEvent(r.Context(), content.EventParams{
		Title: req.Title, Date: req.Date, Location: req.Location,
		ImageURL: req.ImageURL, Description: req.Description, LinkURL: req.LinkURL,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleEventUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       *string `json:"title"`
		Date        *string `json:"date"`
		Location    *string `json:"location"`
		ImageURL    *string `json:"imageUrl"`
		Description *string `json:"description"`
		LinkURL     *string `json:"linkUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := deps.Cave.UpdateEvent(r.Context(), r.PathValue("id"), content.EventUpdate{
		Title: req.Title, Date: req.Date, Location: req.Location,
		ImageURL: req.ImageURL, Description: req.Description, LinkURL: req.LinkURL,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleEventDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.Cave.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
