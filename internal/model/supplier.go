package model

// Supplier is keyed by its "invoice" column, as in the original schema.
type Supplier struct {
	Invoice uint   `gorm:"column:invoice;primaryKey" json:"invoice"`
	Name    string `gorm:"type:text" json:"name"`
	Contact string `gorm:"type:text" json:"contact"`
	Desc    string `gorm:"column:desc;type:text" json:"desc"`
}

func (Supplier) TableName() string {
	return "supplier"
}

type Category struct {
	CID  uint   `gorm:"column:cid;primaryKey" json:"cid"`
	Name string `gorm:"type:text" json:"name"`
}

func (Category) TableName() string {
	return "category"
}
