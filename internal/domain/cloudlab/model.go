// Package cloudlab holds the typed records behind the Cloud Lab page.
package cloudlab

import "haircoolest/internal/adapters/docstore"

// Product is one pomade or grooming product, with optional marketplace links.
type Product struct {
	ID       string
	Name     string
	ImageURL string
	Shopee   string
	Tokped   string
}

// Partner is one collaboration partner.
type Partner struct {
	ID       string
	Name     string
	ImageURL string
	Shopee   string
	Tokped   string
}

// ProductFromDocument decodes a raw document into a Product.
func ProductFromDocument(d docstore.Document) Product {
	return Product{
		ID:       d.ID,
		Name:     d.String("name"),
		ImageURL: d.String("imageUrl"),
		Shopee:   d.String("shopee"),
		Tokped:   d.String("tokped"),
	}
}

// PartnerFromDocument decodes a raw document into a Partner.
func PartnerFromDocument(d docstore.Document) Partner {
	return Partner{
		ID:       d.ID,
		Name:     d.String("name"),
		ImageURL: d.String("imageUrl"),
		Shopee:   d.String("shopee"),
		Tokped:   d.String("tokped"),
	}
}
