package service

import "errors"

var (
	// ErrSaleNotFound is returned when no sale header carries the requested invoice number.
	ErrSaleNotFound = errors.New("invoice not found")
	// ErrBillNotFound is returned when deleting a bill whose sid does not exist.
	ErrBillNotFound = errors.New("bill not found")
	// ErrUnknownSaleInput is returned for a SaleInput variant the billing flow cannot handle.
	ErrUnknownSaleInput = errors.New("unknown sale input")
)
