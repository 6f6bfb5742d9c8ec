package model

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Specification is a single (name, value) row of a product's spec table.
// Insertion order is display order.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Product represents a catalog product. The JSON tags match the overlay blob
// format, so records persisted by older deployments decode unchanged.
type Product struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	CategoryID         string          `json:"categoryId"`
	Description        string          `json:"description"`
	ShortDescription   string          `json:"shortDescription"`
	Price              float64         `json:"price"`
	OriginalPrice      *float64        `json:"originalPrice,omitempty"`
	DiscountPercentage *int            `json:"discountPercentage,omitempty"`
	Image              string          `json:"image"`
	Specifications     []Specification `json:"specifications"`
	Features           []string        `json:"features"`
	Stock              bool            `json:"stock"`
	IsNew              bool            `json:"isNew,omitempty"`
	IsFeatured         bool            `json:"isFeatured,omitempty"`
}

// HasDiscount reports whether the product carries an active discount. A
// discount exists only when the originalPrice/discountPercentage pair is
// present together.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice != nil && p.DiscountPercentage != nil
}

// NormalizeDiscount keeps the discount pair consistent with the current
// price. When the original price is present and higher than the price the
// percentage is recomputed; otherwise the pair is cleared.
func (p *Product) NormalizeDiscount() {
	if p.OriginalPrice != nil && *p.OriginalPrice > p.Price {
		pct := int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
		p.DiscountPercentage = &pct
		return
	}
	p.OriginalPrice = nil
	p.DiscountPercentage = nil
}

// StripEmptyRows drops specification rows with a blank name or value and
// blank feature entries. The admin form submits placeholder rows; they must
// not be persisted.
func (p *Product) StripEmptyRows() {
	specs := p.Specifications[:0:0]
	for _, s := range p.Specifications {
		if strings.TrimSpace(s.Name) != "" && strings.TrimSpace(s.Value) != "" {
			specs = append(specs, s)
		}
	}
	p.Specifications = specs

	features := p.Features[:0:0]
	for _, f := range p.Features {
		if strings.TrimSpace(f) != "" {
			features = append(features, f)
		}
	}
	p.Features = features
}

// GenerateID derives a product id from the category id, a slug of the name
// and the last four digits of the unix-millis timestamp. Collisions are
// unlikely, not impossible; upsert semantics in the store absorb them.
func GenerateID(categoryID, name string, now time.Time) string {
	suffix := strconv.FormatInt(now.UnixMilli(), 10)
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("%s-%s-%s", categoryID, Slugify(name, 20), suffix)
}

// Slugify lowercases the name, strips everything outside ASCII word
// characters and spaces, joins the remaining words with dashes and truncates
// to maxLen bytes.
func Slugify(name string, maxLen int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == ' ', r == '\t':
			b.WriteRune(r)
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if len(slug) > maxLen {
		slug = slug[:maxLen]
	}
	return slug
}

// PlaceholderImage builds the fallback asset reference used when a product
// has no image of its own.
func PlaceholderImage(name string) string {
	return "/placeholder.svg?height=500&width=500&text=" + url.QueryEscape(name)
}
