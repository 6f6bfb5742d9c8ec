package model

// Category represents a storefront category. The set of categories is fixed
// at startup; there is no create/update/delete path for them.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
