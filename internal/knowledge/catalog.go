package knowledge

import "encoding/json"

// PricingJSON renders the product list as indented JSON for embedding in
// billing prompts. Returns the empty string when no catalog is loaded.
func (b *Base) PricingJSON() string {
	if len(b.Catalog.Products) == 0 {
		return ""
	}
	data, err := json.MarshalIndent(b.Catalog.Products, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
