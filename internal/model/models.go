package model

// All lists every table owned by the store, in migration order.
func All() []interface{} {
	return []interface{}{
		&Employee{},
		&Supplier{},
		&Category{},
		&Product{},
		&Sale{},
		&SaleItem{},
	}
}

// Summary holds the dashboard counters.
type Summary struct {
	Employees  int64 `json:"employees"`
	Suppliers  int64 `json:"suppliers"`
	Categories int64 `json:"categories"`
	Products   int64 `json:"products"`
	Sales      int64 `json:"sales"`
}
