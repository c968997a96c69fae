package model

// Sale is the bill header. NetTotal is always TotalAmt - Discount.
type Sale struct {
	SID             uint    `gorm:"column:sid;primaryKey" json:"sid"`
	InvoiceNo       string  `gorm:"column:invoice_no;type:varchar(64);uniqueIndex;not null" json:"invoice_no"`
	CustomerName    string  `gorm:"column:customer_name;type:text" json:"customer_name"`
	CustomerContact string  `gorm:"column:customer_contact;type:text" json:"customer_contact"`
	BillDate        string  `gorm:"column:bill_date;type:text" json:"bill_date"`
	TotalAmt        float64 `gorm:"column:total_amt" json:"total_amt"`
	Discount        float64 `gorm:"column:discount" json:"discount"`
	NetTotal        float64 `gorm:"column:net_total" json:"net_total"`
	BillFile        *string `gorm:"column:bill_file;type:text" json:"bill_file"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleItem belongs to a Sale through InvoiceNo. ProductID is nil for free-text lines.
type SaleItem struct {
	ID          uint    `gorm:"column:id;primaryKey" json:"id"`
	InvoiceNo   string  `gorm:"column:invoice_no;type:varchar(64);index;not null" json:"invoice_no"`
	ProductID   *uint   `gorm:"column:product_id" json:"product_id"`
	ProductName string  `gorm:"column:product_name;type:text" json:"product_name"`
	Qty         float64 `gorm:"column:qty" json:"qty"`
	Price       float64 `gorm:"column:price" json:"price"`
	LineTotal   float64 `gorm:"column:line_total" json:"line_total"`
}

func (SaleItem) TableName() string {
	return "sales_items"
}

// BillView is the row shape of GET /api/bills.
type BillView struct {
	ID           uint    `json:"id"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Invoice      string  `json:"invoice"`
}

// SaleView is the row shape of GET /api/sales.
type SaleView struct {
	SID          uint    `gorm:"column:sid" json:"sid"`
	InvoiceNo    string  `gorm:"column:invoice_no" json:"invoice_no"`
	CustomerName string  `gorm:"column:customer_name" json:"customer_name"`
	BillDate     string  `gorm:"column:bill_date" json:"bill_date"`
	NetTotal     float64 `gorm:"column:net_total" json:"net_total"`
}

// SaleDetail is a header together with all of its line items.
type SaleDetail struct {
	Header Sale       `json:"header"`
	Items  []SaleItem `json:"items"`
}
