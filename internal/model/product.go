package model

// Product references its category and supplier by name only; nothing enforces either.
type Product struct {
	PID      uint    `gorm:"column:pid;primaryKey" json:"pid"`
	Category string  `gorm:"type:text" json:"category"`
	Supplier string  `gorm:"type:text" json:"supplier"`
	Name     string  `gorm:"type:text" json:"name"`
	Price    float64 `json:"price"`
	Qty      int64   `json:"qty"` // may go negative after sales
	Status   string  `gorm:"type:text" json:"status"`
}

func (Product) TableName() string {
	return "product"
}
