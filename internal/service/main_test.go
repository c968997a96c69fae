package service

import (
	"path/filepath"
	"sync"
	"testing"

	"go-ims/internal/invoice"
	"go-ims/internal/model"
	"go-ims/internal/repository"
	"go-ims/internal/ws"
	"go-ims/pkg/database"
	"go-ims/pkg/logger"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingHub struct {
	mu     sync.Mutex
	events []ws.Event
}

func (h *recordingHub) Publish(e ws.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHub) actions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.events))
	for _, e := range h.events {
		out = append(out, e.Action)
	}
	return out
}

type billingFixture struct {
	db       *gorm.DB
	fs       afero.Fs
	invoices *invoice.Store
	hub      *recordingHub
	products repository.ProductRepository
	sales    repository.SaleRepository
	service  BillingService
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Options{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "ims.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newBillingFixture(t *testing.T, fsys afero.Fs) *billingFixture {
	t.Helper()
	if fsys == nil {
		fsys = afero.NewMemMapFs()
	}
	db := openTestDB(t)
	f := &billingFixture{
		db:       db,
		fs:       fsys,
		invoices: invoice.NewStore(fsys, "bill"),
		hub:      &recordingHub{},
		products: repository.NewProductRepo(db),
		sales:    repository.NewSaleRepo(db),
	}
	f.service = NewBillingService(f.sales, f.products, db, f.invoices, invoice.NewNumberer(), f.hub)
	return f
}

func (f *billingFixture) addProduct(t *testing.T, name string, qty int64) uint {
	t.Helper()
	p := &model.Product{Name: name, Category: "General", Supplier: "Acme", Price: 5, Qty: qty, Status: "Active"}
	require.NoError(t, f.db.Create(p).Error)
	return p.PID
}

func (f *billingFixture) qty(t *testing.T, pid uint) int64 {
	t.Helper()
	var p model.Product
	require.NoError(t, f.db.First(&p, "pid = ?", pid).Error)
	return p.Qty
}

func (f *billingFixture) count(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(m).Count(&n).Error)
	return n
}
