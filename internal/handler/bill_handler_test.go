package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemizedBillLifecycle(t *testing.T) {
	s := newTestServer(t, nil)
	require.Equal(t, 201, s.call(t, "POST", "/api/products", map[string]interface{}{"name": "Widget", "price": 5, "qty": 10}, nil))

	var res map[string]interface{}
	status := s.call(t, "POST", "/api/bills", map[string]interface{}{
		"customerName": "Dana",
		"date":         "2024-05-01",
		"discount":     "3",
		"items": []map[string]interface{}{
			{"product_id": 1, "product_name": "Widget", "qty": 2, "price": 5},
			{"product_id": nil, "product_name": "Gadget", "qty": "1", "price": "10"},
		},
	}, &res)
	require.Equal(t, 201, status)
	require.Equal(t, 20.0, res["total"])
	require.Equal(t, 17.0, res["net_total"])
	invoiceNo := res["invoice_no"].(string)

	var products []map[string]interface{}
	s.call(t, "GET", "/api/products", nil, &products)
	require.Equal(t, 8.0, products[0]["qty"])

	var detail struct {
		Header map[string]interface{}   `json:"header"`
		Items  []map[string]interface{} `json:"items"`
	}
	require.Equal(t, 200, s.call(t, "GET", "/api/sales/"+invoiceNo, nil, &detail))
	require.Equal(t, "Dana", detail.Header["customer_name"])
	require.Len(t, detail.Items, 2)
	require.Nil(t, detail.Items[1]["product_id"])

	text, err := s.invoices.Read(s.invoices.Path(invoiceNo))
	require.NoError(t, err)
	require.Contains(t, text, "Net Total: 17.00")

	var bills []map[string]interface{}
	require.Equal(t, 200, s.call(t, "GET", "/api/bills", nil, &bills))
	require.Len(t, bills, 1)
	require.Equal(t, invoiceNo, bills[0]["invoice"])
	require.Equal(t, "Dana", bills[0]["customerName"])
	require.Equal(t, 17.0, bills[0]["amount"])
	require.Equal(t, "2024-05-01", bills[0]["date"])

	sid := detail.Header["sid"].(float64)
	require.Equal(t, 1.0, sid)

	var del map[string]interface{}
	require.Equal(t, 200, s.call(t, "DELETE", "/api/bills/1", nil, &del))
	require.Equal(t, true, del["success"])

	require.Equal(t, 404, s.call(t, "GET", "/api/sales/"+invoiceNo, nil, &res))
	require.Equal(t, "Invoice not found", res["error"])

	require.Equal(t, 200, s.call(t, "DELETE", "/api/bills/1", nil, &del))
	require.Equal(t, false, del["success"])
	require.Equal(t, "Bill not found", del["error"])
}

func TestSimpleBill(t *testing.T) {
	s := newTestServer(t, nil)
	require.Equal(t, 201, s.call(t, "POST", "/api/products", map[string]interface{}{"name": "Apple", "price": 1, "qty": 5}, nil))

	var res map[string]interface{}
	require.Equal(t, 201, s.call(t, "POST", "/api/bills", map[string]interface{}{
		"customerName": "Walk-in",
		"date":         "2024-05-02",
		"amount":       "12.5",
		"items":        []interface{}{},
		"cartItems":    []map[string]interface{}{{"pid": 1, "qty": 2}},
	}, &res))
	require.Equal(t, 12.5, res["total"])
	require.Equal(t, 12.5, res["net_total"])

	var products []map[string]interface{}
	s.call(t, "GET", "/api/products", nil, &products)
	require.Equal(t, 3.0, products[0]["qty"])

	var upd map[string]float64
	require.Equal(t, 200, s.call(t, "PUT", "/api/bills/1", map[string]interface{}{"customerName": "Regular", "amount": 20, "date": "2024-05-03"}, &upd))
	require.Equal(t, 1.0, upd["changes"])

	var sales []map[string]interface{}
	require.Equal(t, 200, s.call(t, "GET", "/api/sales", nil, &sales))
	require.Len(t, sales, 1)
	require.Equal(t, "Regular", sales[0]["customer_name"])
	require.Equal(t, 20.0, sales[0]["net_total"])
}

func TestFractionalQuantityBill(t *testing.T) {
	s := newTestServer(t, nil)
	require.Equal(t, 201, s.call(t, "POST", "/api/products", map[string]interface{}{"name": "Rice", "price": 10, "qty": 10}, nil))

	var res map[string]interface{}
	require.Equal(t, 201, s.call(t, "POST", "/api/bills", map[string]interface{}{
		"customerName": "Dana",
		"items":        []map[string]interface{}{{"product_id": 1, "product_name": "Rice", "qty": 1.5, "price": 10}},
	}, &res))
	require.Equal(t, 15.0, res["total"])
	require.Equal(t, 15.0, res["net_total"])
	invoiceNo := res["invoice_no"].(string)

	var detail struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.Equal(t, 200, s.call(t, "GET", "/api/sales/"+invoiceNo, nil, &detail))
	require.Equal(t, 1.5, detail.Items[0]["qty"])
	require.Equal(t, 15.0, detail.Items[0]["line_total"])

	text, err := s.invoices.Read(s.invoices.Path(invoiceNo))
	require.NoError(t, err)
	require.Contains(t, text, "Rice x 1.5 @ 10 = 15")

	var products []map[string]interface{}
	s.call(t, "GET", "/api/products", nil, &products)
	require.Equal(t, 8.0, products[0]["qty"])

	require.Equal(t, 201, s.call(t, "POST", "/api/bills", map[string]interface{}{
		"amount":    "16",
		"cartItems": []map[string]interface{}{{"pid": 1, "qty": "1.6"}},
	}, nil))
	s.call(t, "GET", "/api/products", nil, &products)
	require.Equal(t, 6.0, products[0]["qty"])
}

func TestBlankNumbersCountAsZero(t *testing.T) {
	s := newTestServer(t, nil)

	var res map[string]interface{}
	require.Equal(t, 201, s.call(t, "POST", "/api/bills", map[string]interface{}{
		"customerName": "Dana",
		"discount":     "",
		"items":        []map[string]interface{}{{"product_id": "", "product_name": "Gadget", "qty": 2, "price": "7.5"}},
	}, &res))
	require.Equal(t, 15.0, res["total"])
	require.Equal(t, 15.0, res["net_total"])

	require.Equal(t, 201, s.call(t, "POST", "/api/products", map[string]interface{}{"name": "Widget", "price": "", "qty": ""}, nil))
	var products []map[string]interface{}
	s.call(t, "GET", "/api/products", nil, &products)
	require.Equal(t, 0.0, products[0]["price"])
	require.Equal(t, 0.0, products[0]["qty"])
}
