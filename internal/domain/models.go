package domain

// Payment is a single payment made by a user. Amount is in whole currency
// units, not cents.
type Payment struct {
	User   string  `json:"user"`
	Amount float64 `json:"amount"`
}

// Product is a drink together with its per-size prices in whole currency
// units. Size labels outside SizeLabels are dropped when the product is
// folded into the price table.
type Product struct {
	DrinkName string             `json:"drink_name"`
	Prices    map[string]float64 `json:"prices"`
}

// Order is one drink ordered by a user at a given size.
type Order struct {
	User  string `json:"user"`
	Drink string `json:"drink"`
	Size  string `json:"size"`
}

// SizeLabels are the recognized product sizes, in fixed priority order.
var SizeLabels = []string{"small", "medium", "large", "huge", "mega", "ultra"}
