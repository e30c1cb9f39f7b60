package model

// PriceLevel is one depth entry of an order book side.
type PriceLevel struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// OrderBook holds aggregated depth for a pair at a point in time.
type OrderBook struct {
	Pair string       `json:"pair"`
	Bids []PriceLevel `json:"bids"`
	Asks []PriceLevel `json:"asks"`
}

// BidVolume sums the quantity across all bid levels.
func (b *OrderBook) BidVolume() float64 {
	var total float64
	for _, lvl := range b.Bids {
		total += lvl.Quantity
	}
	return total
}

// AskVolume sums the quantity across all ask levels.
func (b *OrderBook) AskVolume() float64 {
	var total float64
	for _, lvl := range b.Asks {
		total += lvl.Quantity
	}
	return total
}
