package service

import "github.com/shopspring/decimal"

// SaleInput is either an ItemizedSale or a SimpleSale. The variant is chosen once, at
// the HTTP boundary, and the billing flow never looks at the raw body again.
type SaleInput interface {
	saleInput()
}

// ItemizedSale is a bill with line items, a discount and a generated invoice file.
type ItemizedSale struct {
	CustomerName    string
	CustomerContact string
	Date            string
	Discount        decimal.Decimal
	Items           []SaleLine
}

// SaleLine is one item of an ItemizedSale. ProductID is nil for free-text items.
// Qty may be fractional; only the stock decrement is rounded to whole units.
type SaleLine struct {
	ProductID   *uint
	ProductName string
	Qty         decimal.Decimal
	Price       decimal.Decimal
}

// SimpleSale is a flat-amount bill with optional stock decrements.
type SimpleSale struct {
	CustomerName string
	Date         string
	Amount       decimal.Decimal
	CartItems    []CartItem
}

// CartItem decrements product PID by Qty, rounded to whole units.
type CartItem struct {
	PID uint
	Qty decimal.Decimal
}

func (ItemizedSale) saleInput() {}
func (SimpleSale) saleInput()   {}

// SaleResult is returned by a successful sale creation.
type SaleResult struct {
	InvoiceNo string  `json:"invoice_no"`
	Total     float64 `json:"total"`
	NetTotal  float64 `json:"net_total"`
}

// BillUpdate is the flat rewrite accepted by PUT /api/bills/:id.
type BillUpdate struct {
	CustomerName string
	Amount       decimal.Decimal
	Date         string
}

// stockUnits is the whole number of units a quantity takes off the shelf.
func stockUnits(qty decimal.Decimal) int64 {
	return qty.Round(0).IntPart()
}
