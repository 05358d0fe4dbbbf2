package domain

// ShoppingItem is one aggregated line on the shopping list. Items are
// keyed by case-insensitive name plus exact unit.
type ShoppingItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Checked  bool    `json:"checked"`
}
