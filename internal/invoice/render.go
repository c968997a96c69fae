package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Line is one rendered item of an invoice.
type Line struct {
	Name  string
	Qty   decimal.Decimal
	Price decimal.Decimal
}

// Document carries everything printed on an invoice text file.
type Document struct {
	InvoiceNo string
	Customer  string
	Contact   string
	Date      string
	Lines     []Line
	Total     decimal.Decimal
	Discount  decimal.Decimal
	NetTotal  decimal.Decimal
}

const (
	headerRule = "======================================="
	footerRule = "---------------------------------------"
)

// Render produces the plain-text invoice.
func Render(doc Document) string {
	contact := doc.Contact
	if contact == "" {
		contact = "-"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Invoice: %s\n", doc.InvoiceNo)
	fmt.Fprintf(&b, "Customer: %s\n", doc.Customer)
	fmt.Fprintf(&b, "Contact: %s\n", contact)
	fmt.Fprintf(&b, "Date: %s\n", doc.Date)
	b.WriteString(headerRule + "\n")
	for _, l := range doc.Lines {
		fmt.Fprintf(&b, "%s x %s @ %s = %s\n", l.Name, l.Qty.String(), l.Price.String(), l.Qty.Mul(l.Price).String())
	}
	b.WriteString(footerRule + "\n")
	fmt.Fprintf(&b, "Total: %s\n", doc.Total.StringFixed(2))
	fmt.Fprintf(&b, "Discount: %s\n", doc.Discount.StringFixed(2))
	fmt.Fprintf(&b, "Net Total: %s", doc.NetTotal.StringFixed(2))
	return b.String()
}
