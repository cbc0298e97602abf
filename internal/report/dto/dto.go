package dto

import "github.com/salamtec/inventory-service/internal/model"

// ProductRow is one dashboard line per product in range.
type ProductRow struct {
	ProductName  string          `json:"product_name"`
	RemainingQty int             `json:"remaining_qty"`
	SerialCount  int             `json:"serial_count"`
	DateAdded    model.Timestamp `json:"date_added"`
}

type Dashboard struct {
	TotalIn  int `json:"total_in"`
	TotalOut int `json:"total_out"`
	// TotalRemaining sums the CURRENT quantity of the products selected by
	// the range filter, not a point-in-time figure. See the usecase note.
	TotalRemaining int          `json:"total_remaining"`
	Products       []ProductRow `json:"products"`
}

// HistoryRow is one flattened audit line. Actor is a pointer so that rows
// rendered for non-admin viewers omit the field entirely rather than
// blanking it.
type HistoryRow struct {
	Product      string          `json:"product"`
	Action       model.Action    `json:"action"`
	Quantity     int             `json:"qty"`
	Serials      string          `json:"IMEI"`
	Date         model.Timestamp `json:"date"`
	RemainingQty int             `json:"remaining_qty"`
	Actor        *string         `json:"by,omitempty"`
}
