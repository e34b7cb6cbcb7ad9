package projections

import (
	"context"

	"haircoolest/internal/content"
	"haircoolest/internal/domain/cloudlab"
)

// ProductView is one product or partner-product card.
type ProductView struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Shopee   string `json:"shopee"`
	Tokped   string `json:"tokped"`
}

// CloudLabPage is the view model of the Cloud Lab merch page.
type CloudLabPage struct {
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle"`
	HeaderImage string        `json:"headerImage"`
	Products    []ProductView `json:"products"`
	Partners    []ProductView `json:"partners"`
}

// CloudLabPageDeps holds dependencies for the Cloud Lab page projection.
type CloudLabPageDeps struct {
	CloudLab *content.CloudLab
}

// QueryCloudLabPage assembles the Cloud Lab page view model.
func QueryCloudLabPage(ctx context.Context, deps CloudLabPageDeps) CloudLabPage {
	c := deps.CloudLab
	page := CloudLabPage{
		Title:       fallbackCloudLabTitle,
		HeaderImage: fallbackCloudLabHeader,
		Products:    fallbackProducts(),
		Partners:    fallbackPartners(),
	}

	fanOut(
		func() { page.Title = orDefault(c.Title(ctx), page.Title) },
		func() { page.Subtitle = c.Subtitle(ctx) },
		func() { page.HeaderImage = orDefault(c.HeaderImage(ctx), page.HeaderImage) },
		func() {
			if products := productViews(c.Products(ctx)); len(products) > 0 {
				page.Products = products
			}
		},
		func() {
			if partners := partnerViews(c.Partners(ctx)); len(partners) > 0 {
				page.Partners = partners
			}
		},
	)

	return page
}

func productViews(products []cloudlab.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL, Shopee: p.Shopee, Tokped: p.Tokped})
	}
	return views
}

func partnerViews(partners []cloudlab.Partner) []ProductView {
	views := make([]ProductView, 0, len(partners))
	for _, p := range partners {
		views = append(views, ProductView{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL, Shopee: p.Shopee, Tokped: p.Tokped})
	}
	return views
}
