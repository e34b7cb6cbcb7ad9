package web

import (
	"net/http"

	"haircoolest/internal/content"
	"haircoolest/internal/domain/cloudlab"
)

// Cloud Lab settings document.

type cloudLabSettingsRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	HeaderImage *string `json:"headerImage"`
}

func handleCloudLabSettingsGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := deps.CloudLab
	writeJSON(w, http.StatusOK, map[string]string{
		"title":       c.Title(ctx),
		"subtitle":    c.Subtitle(ctx),
		"headerImage": c.HeaderImage(ctx),
	})
}

func handleCloudLabSettingsPut(w http.ResponseWriter, r *http.Request) {
	var req cloudLabSettingsRequest
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	c := deps.CloudLab
	failed := false
	applyField(&failed, req.Title, func(v string) bool { return c.SetTitle(ctx, v) })
	applyField(&failed, req.Subtitle, func(v string) bool { return c.SetSubtitle(ctx, v) })
	applyField(&failed, req.HeaderImage, func(v string) bool { return c.SetHeaderImage(ctx, v) })
	if failed {
		saveFailed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Products and partners share a shape, so the handlers share bodies and
// differ only in which collection they hit.

type productResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Shopee   string `json:"shopee"`
	Tokped   string `json:"tokped"`
}

type productRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Shopee   string `json:"shopee"`
	Tokped   string `json:"tokped"`
}

type productUpdateRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
	Shopee   *string `json:"shopee"`
	Tokped   *string `json:"tokped"`
}

func writeProductList(w http.ResponseWriter, items []cloudlab.Product) {
	resp := make([]productResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, productResponse{
			ID: p.ID, Name: p.Name, ImageURL: p.ImageURL, Shopee: p.Shopee, Tokped: p.Tokped,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func createProductLike(w http.ResponseWriter, r *http.Request, add func(content.ProductParams) (string, error)) {
	var req productRequest
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "name is required")
		return
	}
	id, err := add(content.ProductParams{
		Name: req.Name, ImageURL: req.ImageURL, Shopee: req.Shopee, Tokped: req.Tokped,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func updateProductLike(w http.ResponseWriter, r *http.Request, update func(string, content.ProductUpdate) error) {
	var req productUpdateRequest
	if err := strictDecode(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	err := update(r.PathValue("id"), content.ProductUpdate{
		Name: req.Name, ImageURL: req.ImageURL, Shopee: req.Shopee, Tokped: req.Tokped,
	})
	if err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleProductsList(w http.ResponseWriter, r *http.Request) {
	writeProductList(w, deps.CloudLab.Products(r.Context()))
}

func handleProductCreate(w http.ResponseWriter, r *http.Request) {
	createProductLike(w, r, func(p content.ProductParams) (string, error) {
		return deps.CloudLab.AddProduct(r.Context(), p)
	})
}

func handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	updateProductLike(w, r, func(id string, u content.ProductUpdate) error {
		return deps.CloudLab.UpdateProduct(r.Context(), id, u)
	})
}

func handleProductDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.CloudLab.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handlePartnersList(w http.ResponseWriter, r *http.Request) {
	partners := deps.CloudLab.Partners(r.Context())
	items := make([]cloudlab.Product, len(partners))
	for i, p := range partners {
		items[i] = cloudlab.Product(p)
	}
	writeProductList(w, items)
}

func handlePartnerCreate(w http.ResponseWriter, r *http.Request) {
	createProductLike(w, r, func(p content.ProductParams) (string, error) {
		return deps.CloudLab.AddPartner(r.Context(), p)
	})
}

func handlePartnerUpdate(w http.ResponseWriter, r *http.Request) {
	updateProductLike(w, r, func(id string, u content.ProductUpdate) error {
		return deps.CloudLab.UpdatePartner(r.Context(), id, u)
	})
}

func handlePartnerDelete(w http.ResponseWriter, r *http.Request) {
	if err := deps.CloudLab.DeletePartner(r.Context(), r.PathValue("id")); err != nil {
		mutationError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
