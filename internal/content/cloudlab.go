package content

import (
	"context"

	"haircoolest/internal/adapters/docstore"
	"haircoolest/internal/domain/cloudlab"
)

// CloudLab manages the Cloud Lab page: header texts and the products /
// partners collections.
type CloudLab struct {
	settings *Settings
	products *Repository[cloudlab.Product]
	partners *Repository[cloudlab.Partner]
}

// NewCloudLab wires the CloudLab module against the document store.
func NewCloudLab(store docstore.Store) *CloudLab {
	return &CloudLab{
		settings: NewSettings(store, "cloud-lab"),
		products: NewRepository(store, "cloudlab-products", cloudlab.ProductFromDocument),
		partners: NewRepository(store, "cloudlab-partners", cloudlab.PartnerFromDocument),
	}
}

func (c *CloudLab) Title(ctx context.Context) string    { return c.settings.Field(ctx, "title") }
func (c *CloudLab) Subtitle(ctx context.Context) string { return c.settings.Field(ctx, "subtitle") }
func (c *CloudLab) HeaderImage(ctx context.Context) string {
	return c.settings.Field(ctx, "headerImage")
}

func (c *CloudLab) SetTitle(ctx context.Context, v string) bool {
	return c.settings.SetField(ctx, "title", v)
}
func (c *CloudLab) SetSubtitle(ctx context.Context, v string) bool {
	return c.settings.SetField(ctx, "subtitle", v)
}
func (c *CloudLab) SetHeaderImage(ctx context.Context, url string) bool {
	return c.settings.SetField(ctx, "headerImage", url)
}

// ProductParams carries the fields of a new product or partner; the two
// collections share a shape.
type ProductParams struct {
	Name     string
	ImageURL string
	Shopee   string
	Tokped   string
}

// ProductUpdate carries a partial edit; nil fields are unchanged.
type ProductUpdate struct {
	Name     *string
	ImageURL *string
	Shopee   *string
	Tokped   *string
}

func (c *CloudLab) Products(ctx context.Context) []cloudlab.Product {
	return c.products.List(ctx)
}

func (c *CloudLab) AddProduct(ctx context.Context, p ProductParams) (string, error) {
	return c.products.Add(ctx, productFields(p))
}

func (c *CloudLab) UpdateProduct(ctx context.Context, id string, u ProductUpdate) error {
	return c.products.Update(ctx, id, productUpdateFields(u))
}

func (c *CloudLab) DeleteProduct(ctx context.Context, id string) error {
	return c.products.Delete(ctx, id)
}

func (c *CloudLab) Partners(ctx context.Context) []cloudlab.Partner {
	return c.partners.List(ctx)
}

func (c *CloudLab) AddPartner(ctx context.Context, p ProductParams) (string, error) {
	return c.partners.Add(ctx, productFields(p))
}

func (c *CloudLab) UpdatePartner(ctx context.Context, id string, u ProductUpdate) error {
	return c.partners.Update(ctx, id, productUpdateFields(u))
}

func (c *CloudLab) DeletePartner(ctx context.Context, id string) error {
	return c.partners.Delete(ctx, id)
}

func productFields(p ProductParams) map[string]any {
	return map[string]any{
		"name": p.Name, "imageUrl": p.ImageURL, "shopee": p.Shopee, "tokped": p.Tokped,
	}
}

func productUpdateFields(u ProductUpdate) map[string]any {
	fields := map[string]any{}
	setIf(fields, "name", u.Name)
	setIf(fields, "imageUrl", u.ImageURL)
	setIf(fields, "shopee", u.Shopee)
	setIf(fields, "tokped", u.Tokped)
	return fields
}
