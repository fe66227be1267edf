package entity

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

const (
	CategorySurfboard ProductCategory = "surfboard"
	CategoryAccessory ProductCategory = "accessory"

	// CategoryAll is the filter value that disables category filtering.
	CategoryAll ProductCategory = "all"
)

// Valid reports whether c is one of the known catalog categories.
func (c ProductCategory) Valid() bool {
	return c == CategorySurfboard || c == CategoryAccessory
}

// DealType describes how a deal discount is applied.
type DealType string

const (
	DealPercentage  DealType = "percentage"
	DealFixedAmount DealType = "fixed_amount"
)

// BrandAll is the filter value that disables brand filtering.
const BrandAll = "all"

// Product is a catalog record. Surfboard-specific attributes are nil for accessories.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	PriceInPence int64           `json:"price_in_pence"`
	ImageURL     string          `json:"image_url"`
	Category     ProductCategory `json:"category"`
	Brand        string          `json:"brand"`

	Rating       *float64  `json:"rating,omitempty"`
	DealType     *DealType `json:"deal_type,omitempty"`
	DealDiscount *int64    `json:"deal_discount,omitempty"`

	Model        *string `json:"model,omitempty"`
	Dimensions   *string `json:"dimensions,omitempty"`
	Volume       *string `json:"volume,omitempty"`
	Ability      *string `json:"ability,omitempty"`
	Conditions   *string `json:"conditions,omitempty"`
	Construction *string `json:"construction,omitempty"`
	FinSystem    *string `json:"fin_system,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductFilters narrows the catalog listing. Nil prices and the "all"
// sentinels mean the dimension is not filtered.
type ProductFilters struct {
	Category       ProductCategory
	PriceInPenceGT *int64
	PriceInPenceLT *int64
	Brand          string
}

// DefaultProductFilters returns filters that match the whole catalog.
func DefaultProductFilters() ProductFilters {
	return ProductFilters{
		Category: CategoryAll,
		Brand:    BrandAll,
	}
}

// Query parameter names used by the catalog API and by shareable links.
const (
	QueryCategory       = "category"
	QueryPriceInPenceGT = "price_in_pence_gt"
	QueryPriceInPenceLT = "price_in_pence_lt"
	QueryBrand          = "brand"
	QueryMaxPrice       = "maxPrice"
)

// QueryString encodes the non-default filters for GET /products, always in the
// order category, price_in_pence_gt, price_in_pence_lt, brand.
func (f ProductFilters) QueryString() string {
	var params []string
	add := func(key, value string) {
		params = append(params, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	if f.hasCategory() {
		add(QueryCategory, string(f.Category))
	}
	if f.PriceInPenceGT != nil {
		add(QueryPriceInPenceGT, strconv.FormatInt(*f.PriceInPenceGT, 10))
	}
	if f.PriceInPenceLT != nil {
		add(QueryPriceInPenceLT, strconv.FormatInt(*f.PriceInPenceLT, 10))
	}
	if f.hasBrand() {
		add(QueryBrand, f.Brand)
	}

	return strings.Join(params, "&")
}

// URLQuery returns the navigable query for the filters: category, maxPrice and brand.
// Default values are omitted.
func (f ProductFilters) URLQuery() url.Values {
	query := url.Values{}
	if f.hasCategory() {
		query.Set(QueryCategory, string(f.Category))
	}
	if f.PriceInPenceLT != nil {
		query.Set(QueryMaxPrice, strconv.FormatInt(*f.PriceInPenceLT, 10))
	}
	if f.hasBrand() {
		query.Set(QueryBrand, f.Brand)
	}

	return query
}

// WithURLQuery returns f updated from a navigable query. Unknown categories,
// non-numeric or non-finite maxPrice values and empty brands are ignored.
func (f ProductFilters) WithURLQuery(query url.Values) ProductFilters {
	if category := ProductCategory(query.Get(QueryCategory)); category.Valid() {
		f.Category = category
	}

	if raw := query.Get(QueryMaxPrice); raw != "" {
		if pence, ok := parsePence(raw); ok {
			f.PriceInPenceLT = &pence
		}
	}

	if brand := strings.TrimSpace(query.Get(QueryBrand)); brand != "" {
		f.Brand = brand
	}

	return f
}

// parsePence reads a non-negative amount, truncating any fraction.
// Values that do not fit in int64 are rejected.
func parsePence(raw string) (int64, bool) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || price < 0 || price >= math.MaxInt64 {
		return 0, false
	}

	return int64(price), true
}

func (f ProductFilters) hasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}

func (f ProductFilters) hasBrand() bool {
	return f.Brand != "" && f.Brand != BrandAll
}
