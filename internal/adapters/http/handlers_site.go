package web

import "net/http"

// siteFieldNames is the set of fields the footer and contact page read
// today. GET returns these; PUT accepts any key because the document is
// open-ended by design.
var siteFieldNames = []string{
	"email", "instagram", "phone", "whatsapp",
	"map_kuningan", "map_petojo", "book_now_url",
}

func handleSiteSettingsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := make(map[string]string, len(siteFieldNames))
	for _, name := range siteFieldNames {
		resp[name] = deps.Site.Field(ctx, name)
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleSiteSettingsPut(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req) == 0 {
		errorJSON(w, http.StatusBadRequest, "no fields to save")
		return
	}

	ctx := r.Context()
	for name, value := range req {
		if name == "" {
			errorJSON(w, http.StatusBadRequest, "field names cannot be empty")
			return
		}
		if !deps.Site.SetField(ctx, name, value) {
			saveFailed(w)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
