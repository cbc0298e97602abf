package dto

import "github.com/salamtec/inventory-service/internal/model"

type AddStockInput struct {
	ProductName string
	Quantity    int
	// Serials must be empty for a plain product; for a serial-tracked
	// product their count must equal Quantity.
	Serials []string
	Actor   model.Actor
}

type RemoveStockInput struct {
	ProductName string
	// Quantity is used for plain products only; for serial-tracked products
	// the quantity is derived from Serials.
	Quantity int
	Serials  []string
	Actor    model.Actor
}
