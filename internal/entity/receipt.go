package entity

import "time"

// UnknownMerchant is the sentinel returned when no merchant heuristic matches.
const UnknownMerchant = "Unknown Merchant"

// LineItem is one parsed purchase entry.
type LineItem struct {
	Name       string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// ReceiptRecord is the structured result of one processing call. It is built
// once by the processor and never mutated afterwards.
type ReceiptRecord struct {
	PurchasedAt  time.Time  `json:"purchased_at"`
	MerchantName string     `json:"merchant_name"`
	TotalAmount  float64    `json:"total_amount"`
	Items        []LineItem `json:"items"`
}

// ItemsTotal returns the sum of line item total prices.
func (r ReceiptRecord) ItemsTotal() float64 {
	var sum float64
	for _, it := range r.Items {
		sum += it.TotalPrice
	}
	return sum
}
