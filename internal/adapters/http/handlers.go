package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/adapters/http/middleware"
	"haircoolest/internal/application/orchestrators"
	"haircoolest/internal/application/projections"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// maxUploadBytes caps editor uploads. Cloudinary's free tier rejects
// anything larger anyway.
const maxUploadBytes = 32 << 20

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json_encode_failed", "error", err.Error())
	}
}

// errorJSON writes an {"error": msg} body the dashboard can display.
func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// mutationError maps a content-layer mutation error to an HTTP response.
func mutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, docstore.ErrNotFound) {
		errorJSON(w, http.StatusNotFound, "not found")
		return
	}
	internalError(w, err)
}

// saveFailed answers settings writes that the content layer reported as
// failed (setters return false, the cause is already logged).
func saveFailed(w http.ResponseWriter) {
	errorJSON(w, http.StatusInternalServerError, "failed to save settings")
}

// applyField runs a settings setter when the field is present in the
// request, recording whether any write failed.
func applyField(failed *bool, v *string, set func(string) bool) {
	if v != nil && !set(*v) {
		*failed = true
	}
}

// admin wraps a handler so only authenticated editors reach it.
func admin(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(h)
}

// registerRoutes attaches every route to the mux. Method-qualified
// patterns keep dispatch in the router instead of in the handlers.
func registerRoutes(mux *http.ServeMux) {
	// Public page view models
	mux.HandleFunc("GET /api/pages/home", handleHomePage)
	mux.HandleFunc("GET /api/pages/sanctuary", handleSanctuaryPage)
	mux.HandleFunc("GET /api/pages/ritual-menu", handleRitualMenuPage)
	mux.HandleFunc("GET /api/pages/cloud-lab", handleCloudLabPage)
	mux.HandleFunc("GET /api/pages/cave", handleCavePage)
	mux.HandleFunc("GET /api/pages/contact", handleContactPage)

	// Public forms
	mux.HandleFunc("POST /api/booking", handleBooking)
	mux.HandleFunc("POST /api/login", handleLogin)
	mux.HandleFunc("POST /api/logout", handleLogout)

	// Session probe for the dashboard shell
	mux.Handle("GET /admin/session", admin(handleSession))

	// Sanctuary
	mux.Handle("GET /admin/sanctuary/settings", admin(handleSanctuarySettingsGet))
	mux.Handle("PUT /admin/sanctuary/settings", admin(handleSanctuarySettingsPut))
	mux.Handle("PUT /admin/sanctuary/main-video", admin(handleMainVideoPut))
	mux.Handle("DELETE /admin/sanctuary/main-video", admin(handleMainVideoDelete))
	mux.Handle("GET /admin/sanctuary/barbers", admin(handleBarbersList))
	mux.Handle("POST /admin/sanctuary/barbers", admin(handleBarberCreate))
	mux.Handle("PUT /admin/sanctuary/barbers/{id}", admin(handleBarberUpdate))
	mux.Handle("DELETE /admin/sanctuary/barbers/{id}", admin(handleBarberDelete))
	mux.Handle("GET /admin/sanctuary/gallery", admin(handleSanctuaryGalleryList))
	mux.Handle("POST /admin/sanctuary/gallery", admin(handleSanctuaryGalleryCreate))
	mux.Handle("DELETE /admin/sanctuary/gallery/{id}", admin(handleSanctuaryGalleryDelete))
	mux.Handle("GET /admin/sanctuary/videos", admin(handleVideosList))
	mux.Handle("POST /admin/sanctuary/videos", admin(handleVideoCreate))
	mux.Handle("DELETE /admin/sanctuary/videos/{id}", admin(handleVideoDelete))
	mux.Handle("GET /admin/sanctuary/awards", admin(handleAwardsList))
	mux.Handle("POST /admin/sanctuary/awards", admin(handleAwardCreate))
	mux.Handle("PUT /admin/sanctuary/awards/{id}", admin(handleAwardUpdate))
	mux.Handle("DELETE /admin/sanctuary/awards/{id}", admin(handleAwardDelete))

	// Ritual Menu
	mux.Handle("GET /admin/ritual-menu/settings", admin(handleRitualMenuSettingsGet))
	mux.Handle("PUT /admin/ritual-menu/settings", admin(handleRitualMenuSettingsPut))
	mux.Handle("GET /admin/ritual-menu/services", admin(handleServicesList))
	mux.Handle("POST /admin/ritual-menu/services", admin(handleServiceCreate))
	mux.Handle("PUT /admin/ritual-menu/services/{id}", admin(handleServiceUpdate))
	mux.Handle("DELETE /admin/ritual-menu/services/{id}", admin(handleServiceDelete))
	mux.Handle("GET /admin/ritual-menu/memberships", admin(handleMembershipsList))
	mux.Handle("POST /admin/ritual-menu/memberships", admin(handleMembershipCreate))
	mux.Handle("PUT /admin/ritual-menu/memberships/{id}", admin(handleMembershipUpdate))
	mux.Handle("DELETE /admin/ritual-menu/memberships/{id}", admin(handleMembershipDelete))

	// Cloud Lab
	mux.Handle("GET /admin/cloud-lab/settings", admin(handleCloudLabSettingsGet))
	mux.Handle("PUT /admin/cloud-lab/settings", admin(handleCloudLabSettingsPut))
	mux.Handle("GET /admin/cloud-lab/products", admin(handleProductsList))
	mux.Handle("POST /admin/cloud-lab/products", admin(handleProductCreate))
	mux.Handle("PUT /admin/cloud-lab/products/{id}", admin(handleProductUpdate))
	mux.Handle("DELETE /admin/cloud-lab/products/{id}", admin(handleProductDelete))
	mux.Handle("GET /admin/cloud-lab/partners", admin(handlePartnersList))
	mux.Handle("POST /admin/cloud-lab/partners", admin(handlePartnerCreate))
	mux.Handle("PUT /admin/cloud-lab/partners/{id}", admin(handlePartnerUpdate))
	mux.Handle("DELETE /admin/cloud-lab/partners/{id}", admin(handlePartnerDelete))

	// Cave
	mux.Handle("GET /admin/cave/settings", admin(handleCaveSettingsGet))
	mux.Handle("PUT /admin/cave/settings", admin(handleCaveSettingsPut))
	mux.Handle("GET /admin/cave/gallery", admin(handleCaveGalleryList))
	mux.Handle("POST /admin/cave/gallery", admin(handleCaveGalleryCreate))
	mux.Handle("DELETE /admin/cave/gallery/{id}", admin(handleCaveGalleryDelete))
	mux.Handle("GET /admin/cave/playground", admin(handlePlaygroundList))
	mux.Handle("POST /admin/cave/playground", admin(handlePlaygroundCreate))
	mux.Handle("PUT /admin/cave/playground/{id}", admin(handlePlaygroundUpdate))
	mux.Handle("DELETE /admin/cave/playground/{id}", admin(handlePlaygroundDelete))
	mux.Handle("GET /admin/cave/menu-categories", admin(handleMenuCategoriesList))
	mux.Handle("POST /admin/cave/menu-categories", admin(handleMenuCategoryCreate))
	mux.Handle("PUT /admin/cave/menu-categories/{id}", admin(handleMenuCategoryUpdate))
	mux.Handle("DELETE /admin/cave/menu-categories/{id}", admin(handleMenuCategoryDelete))
	mux.Handle("GET /admin/cave/menu-items", admin(handleMenuItemsList))
	mux.Handle("POST /admin/cave/menu-items", admin(handleMenuItemCreate))
	mux.Handle("PUT /admin/cave/menu-items/{id}", admin(handleMenuItemUpdate))
	mux.Handle("DELETE /admin/cave/menu-items/{id}", admin(handleMenuItemDelete))
	mux.Handle("GET /admin/cave/events", admin(handleEventsList))
	mux.Handle("POST /admin/cave/events", admin(handleEventCreate))
	mux.Handle("PUT /admin/cave/events/{id}", admin(handleEventUpdate))
	mux.Handle("DELETE /admin/cave/events/{id}", admin(handleEventDelete))

	// Site-wide contact fields
	mux.Handle("GET /admin/site/settings", admin(handleSiteSettingsGet))
	mux.Handle("PUT /admin/site/settings", admin(handleSiteSettingsPut))

	// Media uploads
	mux.Handle("POST /admin/upload/image", admin(handleUploadImage))
	mux.Handle("POST /admin/upload/video", admin(handleUploadVideo))

	// Performance dashboard
	mux.Handle("GET /admin/perf", admin(handlePerf))
}

// Public page handlers. Projections never fail: store errors degrade to
// launch fallbacks, so these always answer 200.

func handleHomePage(w http.ResponseWriter, r *http.Request) {
	page := projections.QueryHomePage(r.Context(), projections.HomePageDeps{
		Sanctuary: deps.Sanctuary,
		Site:      deps.Site,
	})
	writeJSON(w, http.StatusOK, page)
}

func handleSanctuaryPage(w http.ResponseWriter, r *http.Request) {
	page := projections.QuerySanctuaryPage(r.Context(), projections.SanctuaryPageDeps{
		Sanctuary: deps.Sanctuary,
	})
	writeJSON(w, http.StatusOK, page)
}

func handleRitualMenuPage(w http.ResponseWriter, r *http.Request) {
	page := projections.QueryRitualMenuPage(r.Context(), projections.RitualMenuPageDeps{
		RitualMenu: deps.RitualMenu,
	})
	writeJSON(w, http.StatusOK, page)
}

func handleCloudLabPage(w http.ResponseWriter, r *http.Request) {
	page := projections.QueryCloudLabPage(r.Context(), projections.CloudLabPageDeps{
		CloudLab: deps.CloudLab,
	})
	writeJSON(w, http.StatusOK, page)
}

func handleCavePage(w http.ResponseWriter, r *http.Request) {
	page := projections.QueryCavePage(r.Context(), projections.CavePageDeps{
		Cave: deps.Cave,
	})
	writeJSON(w, http.StatusOK, page)
}

func handleContactPage(w http.ResponseWriter, r *http.Request) {
	page := projections.QueryContactPage(r.Context(), projections.ContactPageDeps{
		Site: deps.Site,
	})
	writeJSON(w, http.StatusOK, page)
}

// handleBooking relays the contact form to the shop inbox.
func handleBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := orchestrators.ExecuteBooking(r.Context(), orchestrators.BookingInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}, orchestrators.BookingDeps{
		Sender:    deps.Sender,
		Recipient: deps.BookingRecipient,
		From:      deps.EmailFrom,
		Now:       timeNow,
	})
	if errors.Is(err, orchestrators.ErrBookingSendFailed) {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}

// handleLogin authenticates an editor and issues a session cookie.
// Error messages are passed through verbatim; the dashboard shows them
// to the user as-is.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Remember bool   `json:"remember"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.Remember,
	}, orchestrators.LoginDeps{AccountStore: deps.Accounts})
	if errors.Is(err, orchestrators.ErrTooManyRequests) {
		errorJSON(w, http.StatusTooManyRequests, err.Error())
		return
	}
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := sessions.Create(result.AccountID, result.Email, result.Role, result.Remember)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token, result.Remember)
	writeJSON(w, http.StatusOK, map[string]string{"email": result.Email, "role": result.Role})
}

// handleLogout invalidates the session server-side and clears the cookie.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("haircoolest_session"); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// handleSession tells the dashboard shell who is logged in.
func handleSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": sess.Email, "role": sess.Role})
}

// handleUploadImage relays an editor-submitted image to Cloudinary and
// returns the durable URL for the content form to persist.
func handleUploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := uploadFile(w, r)
	if err != nil {
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "images"
	}
	url, err := deps.Uploader.UploadImage(r.Context(), file, header.Filename, folder)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func handleUploadVideo(w http.ResponseWriter, r *http.Request) {
	file, header, err := uploadFile(w, r)
	if err != nil {
		return
	}
	defer file.Close()

	url, err := deps.Uploader.UploadVideo(r.Context(), file, header.Filename)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// uploadFile extracts the "file" part from a multipart form. On error the
// response has already been written.
func uploadFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid multipart form")
		return nil, nil, err
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "missing file field")
		return nil, nil, err
	}
	return file, header, nil
}

// handlePerf serves the aggregated timing snapshot.
// Query params: minutes (lookback window, default 60), top (list size, default 10).
func handlePerf(w http.ResponseWriter, r *http.Request) {
	if perfCollector == nil {
		errorJSON(w, http.StatusServiceUnavailable, "perf collection disabled")
		return
	}
	minutes := 60
	if v := r.URL.Query().Get("minutes"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			minutes = n
		}
	}
	topN := 10
	if v := r.URL.Query().Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}
	since := timeNow().Add(-time.Duration(minutes) * time.Minute)
	writeJSON(w, http.StatusOK, perfCollector.Snapshot(since, topN))
}
