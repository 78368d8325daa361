package model

import "strings"

// Category is the closed set of support query classes.
type Category string

const (
	CategoryProduct   Category = "Product"
	CategoryTechnical Category = "Technical"
	CategoryBilling   Category = "Billing"
	CategoryAccount   Category = "Account"
	CategoryGeneral   Category = "General"
)

// Categories lists every valid category in taxonomy order.
func Categories() []Category {
	return []Category{
		CategoryProduct,
		CategoryTechnical,
		CategoryBilling,
		CategoryAccount,
		CategoryGeneral,
	}
}

// ParseCategory normalizes a raw classification string to a Category.
// Unknown values map to General so dispatch is always possible.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "product":
		return CategoryProduct
	case "technical":
		return CategoryTechnical
	case "billing":
		return CategoryBilling
	case "account":
		return CategoryAccount
	default:
		return CategoryGeneral
	}
}

// Agent returns the lower-cased category name used in the response envelope.
func (c Category) Agent() string {
	return strings.ToLower(string(c))
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryProduct, CategoryTechnical, CategoryBilling, CategoryAccount, CategoryGeneral:
		return true
	}
	return false
}
