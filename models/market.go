package models

// MarketEvent is a pop-up sale (market stand). Profit is not stored; it is
// computed from the associated sales.
type MarketEvent struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Location   string  `json:"location"`
	StandFee   float64 `json:"standFee"`
	TravelCost float64 `json:"travelCost"`
	Notes      string  `json:"notes"`
	CreatedAt  string  `json:"createdAt"`
}

// MarketSale is a single sale made at a market. It belongs to exactly one
// market; deleting a market does not cascade here, the caller removes the
// sales separately.
type MarketSale struct {
	ID          string  `json:"id"`
	MarketID    string  `json:"marketId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity"`
	CreatedAt   string  `json:"createdAt"`
}
