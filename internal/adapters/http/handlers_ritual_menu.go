package web

import (
	"net/http"

	"haircoolest/internal/content"
	"haircoolest/internal/domain/ritualmenu"
)

// Ritual Menu settings document.

type ritualMenuSettingsRequest struct {
	Title          *string `json:"title"`
	Subtitle       *string `json:"subtitle"`
	HeaderImage    *string `json:"headerImage"`
	BookingTitle   *string `json:"bookingTitle"`
	BookingCtaText *string `json:"bookingCtaText"`
}

func handleRitualMenuSettingsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	m := deps.RitualMenu
	writeJSON(w, http.StatusOK, map[string]string{
		"title":          m.Title(ctx),
		"subtitle":       m.Subtitle(ctx),
		"headerImage":    m.HeaderImage(ctx),
		"bookingTitle":   m.BookingTitle(ctx),
		"bookingCtaText": m.BookingCtaText(ctx),
	})
}

func handleRitualMenuSettingsPut(w http.ResponseWriter, r *http.Request) {
	var req ritualMenuSettingsRequest
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	m := deps.RitualMenu
	failed := false
	applyField(&failed, req.Title, func(v string) bool { return m.SetTitle(ctx, v) })
	applyField(&failed, req.Subtitle, func(v string) bool { return m.SetSubtitle(ctx, v) })
	applyField(&failed, req.HeaderImage, func(v string) bool { return m.SetHeaderImage(ctx, v) })
	applyField(&failed, req.BookingTitle, func(v string) bool { return m.SetBookingTitle(ctx, v) })
	applyField(&failed, req.BookingCtaText, func(v string) bool { return m.SetBookingCtaText(ctx, v) })
	if failed {
		saveFailed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Services collection.

type serviceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

func handleServicesList(w http.ResponseWriter, r *http.Request) {
	services := deps.RitualMenu.Services(r.Context())
	resp := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, serviceResponse{
			ID: s.ID, Name: s.Name, Description: s.Description, ImageURL: s.ImageURL, Order: s.Order,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleServiceCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
		Order       int    `json:"order"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s := ritualmenu.Service{Name: req.Name}
	if err := s.Validate(); err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := deps.RitualMenu.AddService(r.Context(), content.ServiceParams{
		Name: req.Name, Description: req.Description, ImageURL: req.ImageURL, Order: req.Order,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleServiceUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		ImageURL    *string `json:"imageUrl"`
		Order       *int    `json:"order"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := deps.RitualMenu.UpdateService(r.Context(), r.PathValue("id"), content.ServiceUpdate{
		Name: req.Name, Description: req.Description, ImageURL: req.ImageURL, Order: req.Order,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleServiceDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.RitualMenu.DeleteService(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Memberships collection.

type membershipResponse struct {
	ID       string   `json:"id"`
	Duration string   `json:"duration"`
	Benefits []string `json:"benefits"`
	ImageURL string   `json:"imageUrl"`
}

func handleMembershipsList(w http.ResponseWriter, r *http.Request) {
	memberships := deps.RitualMenu.Memberships(r.Context())
	resp := make([]membershipResponse, 0, len(memberships))
	for _, m := range memberships {
		benefits := m.Benefits
		if benefits == nil {
			benefits = []string{}
		}
		resp = append(resp, membershipResponse{
			ID: m.ID, Duration: m.Duration, Benefits: benefits, ImageURL: m.ImageURL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleMembershipCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Duration string   `json:"duration"`
		Benefits []string `json:"benefits"`
		ImageURL string   `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m := ritualmenu.Membership{Duration: req.Duration}
	if err := m.Validate(); err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := deps.RitualMenu.AddMembership(r.Context(), content.MembershipParams{
		Duration: req.Duration, Benefits: req.Benefits, ImageURL: req.ImageURL,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func handleMembershipUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Duration *string   `json:"duration"`
		Benefits *[]string `json:"benefits"`
		ImageURL *string   `json:"imageUrl"`
	}
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := deps.RitualMenu.UpdateMembership(r.Context(), r.PathValue("id"), content.MembershipUpdate{
		Duration: req.Duration, Benefits: req.Benefits, ImageURL: req.ImageURL,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleMembershipDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.RitualMenu.DeleteMembership(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
