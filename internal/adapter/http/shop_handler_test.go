package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarbek-dev/burger-shop/internal/adapter/logger"
	"github.com/askarbek-dev/burger-shop/internal/adapter/memory"
	"github.com/askarbek-dev/burger-shop/internal/adapter/wallet"
	"github.com/askarbek-dev/burger-shop/internal/app/shop"
	"github.com/askarbek-dev/burger-shop/internal/domain"
	"github.com/askarbek-dev/burger-shop/internal/interfaces"
)

type noopPublisher struct{}

func (noopPublisher) PublishPaymentRecorded(ctx context.Context, msg interfaces.PaymentRecordedMessage) error {
	return nil
}

type testShop struct {
	handler *ShopHandler
	bank    *wallet.Wallet
	buyer   domain.AccountID
}

func newTestShop(t *testing.T) *testShop {
	t.Helper()

	bank := wallet.New()
	bank.Register("shop-owner", 0)
	buyer := bank.OpenAccount(1000 * domain.ScaleFactor)

	service := shop.NewService("shop-owner", memory.NewLedger(), bank, noopPublisher{}, logger.New("test"))

	return &testShop{
		handler: NewShopHandler(service, logger.New("test")),
		bank:    bank,
		buyer:   buyer,
	}
}

func (ts *testShop) createOrder(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ts.handler.HandleOrders(rec, req)
	return rec
}

func TestCreateOrder_Success(t *testing.T) {
	ts := newTestShop(t)

	body := `{
		"customer_account": "` + string(ts.buyer) + `",
		"attached_value": 34000000000000,
		"items": [
			{"item": "cheese_burger", "quantity": 2},
			{"item": "vegi_burger", "quantity": 1}
		]
	}`

	rec := ts.createOrder(t, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint32(0), resp.ID)
	assert.Equal(t, uint64(34), resp.TotalPrice)
	assert.True(t, resp.Paid)
	assert.Len(t, resp.Items, 2)
}

func TestCreateOrder_WrongAmount(t *testing.T) {
	ts := newTestShop(t)

	body := `{
		"customer_account": "` + string(ts.buyer) + `",
		"attached_value": 33000000000000,
		"items": [
			{"item": "cheese_burger", "quantity": 2},
			{"item": "vegi_burger", "quantity": 1}
		]
	}`

	rec := ts.createOrder(t, body)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Expected)
	assert.Equal(t, uint64(34), *resp.Expected)

	// Nothing was committed.
	listReq := httptest.NewRequest(http.MethodGet, "/orders", nil)
	listRec := httptest.NewRecorder()
	ts.handler.HandleOrders(listRec, listReq)

	var list OrderListResponse
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &list))
	assert.Empty(t, list.Orders)
}

func TestCreateOrder_OwnerForbidden(t *testing.T) {
	ts := newTestShop(t)

	body := `{
		"customer_account": "shop-owner",
		"attached_value": 12000000000000,
		"items": [{"item": "cheese_burger", "quantity": 1}]
	}`

	rec := ts.createOrder(t, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateOrder_ValidationErrors(t *testing.T) {
	ts := newTestShop(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty items", `{"customer_account": "c1", "attached_value": 0, "items": []}`},
		{"zero quantity", `{"customer_account": "c1", "attached_value": 0, "items": [{"item": "cheese_burger", "quantity": 0}]}`},
		{"unknown item", `{"customer_account": "c1", "attached_value": 0, "items": [{"item": "pizza", "quantity": 1}]}`},
		{"missing account", `{"attached_value": 0, "items": [{"item": "cheese_burger", "quantity": 1}]}`},
		{"bad json", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.createOrder(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetSingleOrder(t *testing.T) {
	ts := newTestShop(t)

	// Unknown id before anything is committed.
	req := httptest.NewRequest(http.MethodGet, "/orders/0", nil)
	rec := httptest.NewRecorder()
	ts.handler.GetSingleOrder(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := `{
		"customer_account": "` + string(ts.buyer) + `",
		"attached_value": 15000000000000,
		"items": [{"item": "chicken_burger", "quantity": 1}]
	}`
	require.Equal(t, http.StatusCreated, ts.createOrder(t, body).Code)

	req = httptest.NewRequest(http.MethodGet, "/orders/0", nil)
	rec = httptest.NewRecorder()
	ts.handler.GetSingleOrder(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint32(0), resp.ID)
	assert.Equal(t, uint64(15), resp.TotalPrice)
	assert.True(t, resp.Paid)
}

func TestGetSingleOrder_InvalidID(t *testing.T) {
	ts := newTestShop(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/abc", nil)
	rec := httptest.NewRecorder()
	ts.handler.GetSingleOrder(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllOrders_EmptyList(t *testing.T) {
	ts := newTestShop(t)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	ts.handler.HandleOrders(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Orders)
	assert.Empty(t, resp.Orders)
}

func TestHandleOrders_MethodNotAllowed(t *testing.T) {
	ts := newTestShop(t)

	req := httptest.NewRequest(http.MethodDelete, "/orders", nil)
	rec := httptest.NewRecorder()
	ts.handler.HandleOrders(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
