package handler

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Employee  *EmployeeHandler
	Supplier  *SupplierHandler
	Category  *CategoryHandler
	Inventory *InventoryHandler
	Bill      *BillHandler
	Dashboard *DashboardHandler
	Backup    *BackupHandler
}

// SetupRoutes mounts the JSON API under /api.
func SetupRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")

	api.Get("/summary", h.Dashboard.GetSummary)

	api.Get("/employees", h.Employee.GetEmployees)
	api.Post("/employees", h.Employee.CreateEmployee)
	api.Put("/employees/:eid", h.Employee.UpdateEmployee)
	api.Delete("/employees/:eid", h.Employee.DeleteEmployee)

	api.Get("/suppliers", h.Supplier.GetSuppliers)
	api.Post("/suppliers", h.Supplier.CreateSupplier)
	api.Put("/suppliers/:invoice", h.Supplier.UpdateSupplier)
	api.Delete("/suppliers/:invoice", h.Supplier.DeleteSupplier)

	api.Get("/categories", h.Category.GetCategories)
	api.Post("/categories", h.Category.CreateCategory)
	api.Delete("/categories/:cid", h.Category.DeleteCategory)

	api.Get("/products", h.Inventory.GetProducts)
	api.Post("/products", h.Inventory.CreateProduct)
	api.Put("/products/:pid", h.Inventory.UpdateProduct)
	api.Delete("/products/:pid", h.Inventory.DeleteProduct)

	// Bills and sales are two views over the same sales table.
	api.Get("/bills", h.Bill.GetBills)
	api.Post("/bills", h.Bill.CreateBill)
	api.Put("/bills/:sid", h.Bill.UpdateBill)
	api.Delete("/bills/:sid", h.Bill.DeleteBill)
	api.Get("/sales", h.Bill.GetSales)
	api.Get("/sales/:invoice_no", h.Bill.GetSale)

	api.Get("/san-status", h.Backup.GetStatus)
	api.Get("/backup-log", h.Backup.GetLog)
	api.Post("/run-backup-and-predict", h.Backup.RunBackupAndPredict)
}
