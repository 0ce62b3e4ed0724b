// Package models holds the catalog wire models and the normalization rules
// that convert the backend's heterogeneous legacy shapes into the canonical
// forms the rest of the client works with.
package models

import "time"

// Categories is the fixed set of catalog category labels the dashboard
// accepts for new and updated products.
var Categories = []string{
	"رمضان كريم",
	"ملابس اطفال",
	"سوت",
	"سواريه",
	"جامبسوت",
	"كاجول",
	"فورمال او كلاسيك",
}

// Product is a catalog item as returned by the backend. Sizes and Colors may
// arrive as arrays or comma-joined strings; images may arrive in the current
// Images list or the legacy single Image field. Normalize converts a decoded
// record into canonical form.
type Product struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Sizes       FlexStrings `json:"sizes,omitempty"`
	Colors      FlexStrings `json:"colors,omitempty"`
	Image       string      `json:"image,omitempty"`
	Images      []string    `json:"images,omitempty"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
}

// Normalize rewrites the record in place into its canonical shape: size
// tokens mapped to the canonical set, colors trimmed and lowercased, and the
// image list resolved from whichever field the backend populated. Run once
// at API ingress so presentation code never sees a legacy shape.
func (p *Product) Normalize() {
	p.Sizes = NormalizeSizes(p.Sizes)
	p.Colors = NormalizeColors(p.Colors)
	p.Images = ResolveImages(*p)
}

// PaginationResult is the backend's paging envelope.
type PaginationResult struct {
	CurrentPage   int `json:"currentPage"`
	Limit         int `json:"limit"`
	NumberOfPages int `json:"numberOfPages"`
}
