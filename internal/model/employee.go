package model

import "golang.org/x/crypto/bcrypt"

type Employee struct {
	EID     uint    `gorm:"column:eid;primaryKey" json:"eid"`
	Name    string  `gorm:"type:text" json:"name"`
	Email   string  `gorm:"type:text" json:"email"`
	Gender  string  `gorm:"type:text" json:"gender"`
	Contact string  `gorm:"type:text" json:"contact"`
	DOB     string  `gorm:"column:dob;type:text" json:"dob"`
	DOJ     string  `gorm:"column:doj;type:text" json:"doj"`
	Pass    string  `gorm:"column:pass;type:text" json:"-"` // bcrypt hash, never serialized
	UType   string  `gorm:"column:utype;type:text" json:"utype"`
	Address string  `gorm:"type:text" json:"address"`
	Salary  float64 `json:"salary"`
}

func (Employee) TableName() string {
	return "employee"
}

// SetPassword hashes and stores the employee's credential.
func (e *Employee) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Pass = string(hashed)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (e *Employee) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.Pass), []byte(password)) == nil
}
