// Package catalogview holds the storefront's client-side listing logic:
// category filtering, per-product description expand state and the order
// handoff link. Everything here is pure; the page fetches the catalog once
// and works entirely in memory afterwards.
package catalogview

import (
	"net/url"
	"strconv"

	"github.com/eshabeddings/catalog-service/internal/models"
)

// DescriptionPreviewLength is how many characters of a description show
// in the collapsed state before the "See More" cut.
const DescriptionPreviewLength = 80

// Selection is the selected category filter. The zero value selects the
// whole catalog, which is the page's initial state; there is no sentinel
// category value.
type Selection struct {
	category models.Category
}

// SelectAll returns the no-filter selection.
func SelectAll() Selection {
	return Selection{}
}

// SelectCategory returns a selection showing only category c.
func SelectCategory(c models.Category) Selection {
	return Selection{category: c}
}

// All reports whether the selection applies no filter.
func (s Selection) All() bool {
	return s.category == ""
}

// Category returns the selected category and whether one is selected.
func (s Selection) Category() (models.Category, bool) {
	return s.category, s.category != ""
}

// Filter returns the products visible under the selection, preserving
// input order. With no filter the input is returned as-is.
func Filter(products []models.Product, sel Selection) []models.Product {
	if sel.All() {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.Category == string(sel.category) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// ExpandState maps product ID to whether its description is expanded.
// Absent entries are collapsed.
type ExpandState map[string]bool

// NewExpandState returns an empty expand state (everything collapsed).
func NewExpandState() ExpandState {
	return make(ExpandState)
}

// Toggle flips the expand state of one product, leaving all others alone.
func (s ExpandState) Toggle(productID string) {
	s[productID] = !s[productID]
}

// Expanded reports whether the product's description is expanded.
func (s ExpandState) Expanded(productID string) bool {
	return s[productID]
}

// NeedsTruncation reports whether a description is long enough to get the
// See More/See Less toggle.
func NeedsTruncation(description string) bool {
	return len([]rune(description)) > DescriptionPreviewLength
}

// DisplayDescription returns the text to render: the full description when
// expanded or short enough, otherwise the preview prefix plus an ellipsis.
func DisplayDescription(description string, expanded bool) string {
	if expanded || !NeedsTruncation(description) {
		return description
	}
	return string([]rune(description)[:DescriptionPreviewLength]) + "..."
}

// FormatPrice renders a price with the naira prefix, e.g. "₦25000".
func FormatPrice(price float64) string {
	return "₦" + strconv.FormatFloat(price, 'f', -1, 64)
}

// OrderLink builds the WhatsApp deep link for ordering a product. No order
// is persisted anywhere; the handoff is the whole checkout.
func OrderLink(whatsAppNumber string, product models.Product) string {
	message := "I want to order " + product.Name + " for " + FormatPrice(product.Price)

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + whatsAppNumber,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}
	return link.String()
}

// ImageAllowed reports whether a product image URL points at one of the
// configured hosts over https. Reachability is never checked.
func ImageAllowed(rawURL string, allowedHosts []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "https" {
		return false
	}

	for _, host := range allowedHosts {
		if u.Host == host {
			return true
		}
	}
	return false
}
