package handler

import (
	"errors"

	"go-ims/internal/service"
	"go-ims/pkg/coerce"

	"github.com/gofiber/fiber/v2"
)

type BillHandler struct {
	service service.BillingService
}

func NewBillHandler(s service.BillingService) *BillHandler {
	return &BillHandler{service: s}
}

// billRequest covers both bill shapes. A non-empty items list makes it itemized.
type billRequest struct {
	CustomerName    string        `json:"customerName"`
	CustomerContact string        `json:"customerContact"`
	Date            string        `json:"date"`
	Discount        coerce.Number `json:"discount"`
	Amount          coerce.Number `json:"amount"`
	Items           []struct {
		ProductID   coerce.Number `json:"product_id"`
		ProductName string        `json:"product_name"`
		Qty         coerce.Number `json:"qty"`
		Price       coerce.Number `json:"price"`
	} `json:"items"`
	CartItems []struct {
		PID coerce.Number `json:"pid"`
		Qty coerce.Number `json:"qty"`
	} `json:"cartItems"`
}

func (r *billRequest) toInput() service.SaleInput {
	if len(r.Items) > 0 {
		sale := service.ItemizedSale{
			CustomerName:    r.CustomerName,
			CustomerContact: r.CustomerContact,
			Date:            r.Date,
			Discount:        r.Discount.Decimal,
			Items:           make([]service.SaleLine, 0, len(r.Items)),
		}
		for _, it := range r.Items {
			line := service.SaleLine{
				ProductName: it.ProductName,
				Qty:         it.Qty.Decimal,
				Price:       it.Price.Decimal,
			}
			// 0, null and "" all mean a free-text line.
			if it.ProductID.IntPart() > 0 {
				pid := uint(it.ProductID.IntPart())
				line.ProductID = &pid
			}
			sale.Items = append(sale.Items, line)
		}
		return sale
	}

	sale := service.SimpleSale{
		CustomerName: r.CustomerName,
		Date:         r.Date,
		Amount:       r.Amount.Decimal,
		CartItems:    make([]service.CartItem, 0, len(r.CartItems)),
	}
	for _, it := range r.CartItems {
		if it.PID.IntPart() <= 0 {
			continue
		}
		sale.CartItems = append(sale.CartItems, service.CartItem{PID: uint(it.PID.IntPart()), Qty: it.Qty.Decimal})
	}
	return sale
}

// GET /api/bills
func (h *BillHandler) GetBills(c *fiber.Ctx) error {
	bills, err := h.service.ListBills(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(bills)
}

// CreateBill records a sale, itemized or simple
// POST /api/bills
func (h *BillHandler) CreateBill(c *fiber.Ctx) error {
	var req billRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	res, err := h.service.CreateSale(c.UserContext(), req.toInput())
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(201).JSON(res)
}

// PUT /api/bills/:sid
func (h *BillHandler) UpdateBill(c *fiber.Ctx) error {
	sid, ok := paramID(c, "sid")
	if !ok {
		return invalidID(c, "bill ID")
	}

	var req struct {
		CustomerName string        `json:"customerName"`
		Amount       coerce.Number `json:"amount"`
		Date         string        `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	n, err := h.service.UpdateBill(c.UserContext(), sid, service.BillUpdate{
		CustomerName: req.CustomerName,
		Amount:       req.Amount.Decimal,
		Date:         req.Date,
	})
	if err != nil {
		return storeError(c, err)
	}
	return changes(c, n)
}

// DeleteBill removes a sale with its items and invoice file
// DELETE /api/bills/:sid
func (h *BillHandler) DeleteBill(c *fiber.Ctx) error {
	sid, ok := paramID(c, "sid")
	if !ok {
		return invalidID(c, "bill ID")
	}

	if err := h.service.DeleteSale(c.UserContext(), sid); err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			return c.JSON(fiber.Map{"success": false, "error": "Bill not found"})
		}
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GET /api/sales
func (h *BillHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.ListSales(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(sales)
}

// GET /api/sales/:invoice_no
func (h *BillHandler) GetSale(c *fiber.Ctx) error {
	detail, err := h.service.GetSale(c.UserContext(), c.Params("invoice_no"))
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return storeError(c, err)
	}
	return c.JSON(detail)
}
