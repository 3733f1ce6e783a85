package products

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrDuplicateCode     = errors.New("product code already exists")
	QueryTimeoutDuration = time.Second * 5
)

// VendorInfo is the vendor descriptor embedded in every product.
type VendorInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Product struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	VendorInfo  VendorInfo `json:"vendorInfo"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BelongsTo reports whether the vendor resolved from the product's descriptor is the actor.
// Both the email and the id have to line up; a matching email alone is not ownership.
func (p *Product) BelongsTo(vendorID int64, vendorEmail string, actorID int64) bool {
	if p == nil || vendorEmail == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(p.VendorInfo.Email), strings.TrimSpace(vendorEmail)) &&
		vendorID == actorID
}

// SearchFilter narrows a product search. Zero values mean "no constraint".
type SearchFilter struct {
	Name       string
	VendorName string
	Code       string
	MinPrice   *float64
	MaxPrice   *float64
}
