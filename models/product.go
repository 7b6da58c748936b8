// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultCategory is assigned to products created without a category.
const DefaultCategory = "general"

// Product is a marketplace listing owned by a seller.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`

	// SellerID references the owning user. It is nil when the seller
	// account no longer exists.
	SellerID *int64 `json:"seller_id"`

	// SellerName is the seller's username, resolved at read time.
	SellerName *string `json:"seller_name"`

	// IsFavorited reports whether the requesting user saved this product.
	// Always false for anonymous requests.
	IsFavorited bool `json:"is_favorited"`

	// FavoritedAt is set only in favorites listings.
	FavoritedAt *time.Time `json:"favorited_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// IsOwnedBy reports whether userID is the product's seller.
func (p Product) IsOwnedBy(userID int64) bool {
	return p.SellerID != nil && *p.SellerID == userID
}

// ProductInput is the body of POST /products.
type ProductInput struct {
	Title       string  `json:"title" validate:"min=2,max=200"`
	Description string  `json:"description" validate:"min=10,max=2000"`
	Price       float64 `json:"price" validate:"gt=0"`
	Image       string  `json:"image,omitempty" validate:"omitempty,http_url"`
	Category    string  `json:"category,omitempty" validate:"max=50"`

	// SellerID is taken from the authenticated identity, never from the body.
	SellerID int64 `json:"-"`
}

// Normalize trims the free-text fields in place. It runs before validation
// so the length rules apply to the value that is stored.
func (p *ProductInput) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
}

// ProductUpdate is the body of PUT /products/:id.
//
// Absent fields are left unchanged. An explicit null clears the image and
// is rejected for every other field. The rules for present values live in
// the validators package since they depend on presence.
type ProductUpdate struct {
	Title       Optional[string]  `json:"title,omitzero"`
	Description Optional[string]  `json:"description,omitzero"`
	Price       Optional[float64] `json:"price,omitzero"`
	Image       Optional[string]  `json:"image,omitzero"`
	Category    Optional[string]  `json:"category,omitzero"`
}

// Normalize trims the present free-text fields in place.
func (u *ProductUpdate) Normalize() {
	trimOptional(&u.Title)
	trimOptional(&u.Description)
	trimOptional(&u.Category)
}

func trimOptional(o *Optional[string]) {
	if o.Present() {
		o.Value = strings.TrimSpace(o.Value)
	}
}

// IsEmpty reports whether the update carries no field at all.
func (u ProductUpdate) IsEmpty() bool {
	return !u.Title.Set && !u.Description.Set && !u.Price.Set && !u.Image.Set && !u.Category.Set
}

// Sortable product columns accepted by ProductQuery.SortBy.
const (
	SortByCreatedAt = "created_at"
	SortByTitle     = "title"
	SortByPrice     = "price"
)

// Sort directions.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// ProductQuery describes a product listing request.
type ProductQuery struct {
	PageRequest

	// Search is a case-insensitive substring matched against title or description.
	Search string

	// Category filters by exact category when non-empty.
	Category string

	// SortBy is one of the SortBy* constants.
	SortBy string

	// Order is OrderAsc or OrderDesc.
	Order string

	// ViewerID is the requesting user, 0 for anonymous requests.
	ViewerID int64
}

// ProductPage is the response of GET /products.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// FavoritePage is the response of GET /favorites.
type FavoritePage struct {
	Favorites  []Product  `json:"favorites"`
	Pagination Pagination `json:"pagination"`
}

// ProductFilter holds the raw listing parameters as sent by a client.
// Zero values mean "not set".
type ProductFilter struct {
	Page     int
	Limit    int
	Search   string
	Category string
	SortBy   string
	Order    string
}

// QueryParams returns the non-empty parameters keyed by their query string
// names.
func (f ProductFilter) QueryParams() map[string]string {
	params := make(map[string]string)
	if f.Page != 0 {
		params["page"] = strconv.Itoa(f.Page)
	}
	if f.Limit != 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	if f.Category != "" {
		params["category"] = f.Category
	}
	if f.SortBy != "" {
		params["sortBy"] = f.SortBy
	}
	if f.Order != "" {
		params["order"] = f.Order
	}
	return params
}

// Key returns a stable string identifying the filter, suitable as a cache key.
func (f ProductFilter) Key() string {
	values := make(url.Values)
	for k, v := range f.QueryParams() {
		values.Set(k, v)
	}
	return values.Encode()
}
