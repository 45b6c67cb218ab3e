package model

import (
	"fmt"
	"net/url"
	"strconv"
)

// Category as served by the shop API.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type ProductImage struct {
	ID        int    `json:"id"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// Product mirrors the catalog representation. Prices are decimal strings;
// this service never does arithmetic on them.
type Product struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	Price         string         `json:"price"`
	DiscountPrice *string        `json:"discount_price,omitempty"`
	Category      int            `json:"category"`
	Images        []ProductImage `json:"images"`
	Rating        float64        `json:"rating,omitempty"`
	ReviewCount   int            `json:"review_count,omitempty"`
	Stock         int            `json:"stock"`
	IsFeatured    bool           `json:"is_featured"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
}

// ProductList is the paginated listing response.
type ProductList struct {
	Count   int       `json:"count"`
	Results []Product `json:"results"`
}

// Filter captures the browse/filter parameters the storefront exposes.
type Filter struct {
	Search   string
	Category int
	MinPrice string
	MaxPrice string
	Ordering string
	Page     int
	PageSize int
}

// Normalize applies the defaults the listing endpoint guarantees.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 12
	}
	if f.Ordering == "" {
		f.Ordering = "-created_at"
	}
	return f
}

// QueryValues encodes the filter as shop API query parameters.
func (f Filter) QueryValues() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("page_size", strconv.Itoa(f.PageSize))
	v.Set("ordering", f.Ordering)
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Category > 0 {
		v.Set("category", strconv.Itoa(f.Category))
	}
	if f.MinPrice != "" {
		v.Set("min_price", f.MinPrice)
	}
	if f.MaxPrice != "" {
		v.Set("max_price", f.MaxPrice)
	}
	return v
}

// CacheKey derives a stable cache key for the filter.
func (f Filter) CacheKey() string {
	return fmt.Sprintf("catalog:products:%s:%d:%s:%s:%s:%d:%d",
		f.Search, f.Category, f.MinPrice, f.MaxPrice, f.Ordering, f.Page, f.PageSize)
}
