package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBill(t *testing.T) {
	db, restRepo, orderRepo := newTestRepos(t)
	auth := NewAuthService(restRepo)
	orders := NewOrderService(db, orderRepo, restRepo, nil)
	bills := NewBillingService(orderRepo, restRepo, "Rs.")

	in := cafeX()
	in.UpiID = "cafex@upi"
	rest, err := auth.Register(in)
	require.NoError(t, err)

	order, err := orders.Create(teaBunOrder(rest.ID))
	require.NoError(t, err)

	doc, filename, err := bills.GenerateBill(order.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, "invoice-"+order.OrderCode+".pdf", filename)

	// tax side effect persisted: 55 → gst 3, grand 58
	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(55), got.TotalAmount)
	assert.Equal(t, int64(3), got.GstAmount)
	assert.Equal(t, int64(58), got.GrandTotal)
	assert.True(t, got.BillGenerated)
}

func TestGenerateBillIdempotent(t *testing.T) {
	db, restRepo, orderRepo := newTestRepos(t)
	auth := NewAuthService(restRepo)
	orders := NewOrderService(db, orderRepo, restRepo, nil)
	bills := NewBillingService(orderRepo, restRepo, "Rs.")

	rest, err := auth.Register(cafeX())
	require.NoError(t, err)
	order, err := orders.Create(teaBunOrder(rest.ID))
	require.NoError(t, err)

	first, _, err := bills.GenerateBill(order.ID)
	require.NoError(t, err)
	second, _, err := bills.GenerateBill(order.ID)
	require.NoError(t, err)

	// recomputation, not accumulation
	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.GstAmount)
	assert.Equal(t, int64(58), got.GrandTotal)

	// same order state renders the same document
	assert.Equal(t, first, second)
}

func TestGenerateBillMissingOrder(t *testing.T) {
	_, restRepo, orderRepo := newTestRepos(t)
	bills := NewBillingService(orderRepo, restRepo, "Rs.")

	_, _, err := bills.GenerateBill(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateBillMissingRestaurant(t *testing.T) {
	db, restRepo, orderRepo := newTestRepos(t)
	orders := NewOrderService(db, orderRepo, restRepo, nil)
	bills := NewBillingService(orderRepo, restRepo, "Rs.")

	// order created leniently against a restaurant that never existed
	order, err := orders.Create(teaBunOrder(4242))
	require.NoError(t, err)

	// bill generation fails fast instead of rendering a broken seller block
	_, _, err = bills.GenerateBill(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
