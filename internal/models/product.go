package models

import "strings"

// Category is one of the fixed product groupings the storefront knows about.
type Category string

const (
	CategoryBedding    Category = "bedding"
	CategoryPillows    Category = "pillows"
	CategoryDuvets     Category = "duvets"
	CategoryEssentials Category = "essentials"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryBedding, CategoryPillows, CategoryDuvets, CategoryEssentials}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBedding, CategoryPillows, CategoryDuvets, CategoryEssentials:
		return true
	}
	return false
}

// Product represents a catalog item as stored and served.
// The ID is assigned by the store on creation and immutable thereafter.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// ProductInput carries the five content fields of a product for create
// and update calls. The stored category set is not enforced here; only
// the admin form restricts the choice, matching the observed behaviour.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// Complete reports whether every content field is present. A zero price
// counts as missing, the same way the storefront's form treats it.
func (in ProductInput) Complete() bool {
	return strings.TrimSpace(in.Name) != "" &&
		strings.TrimSpace(in.Description) != "" &&
		in.Price > 0 &&
		strings.TrimSpace(in.Image) != "" &&
		strings.TrimSpace(in.Category) != ""
}
