package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/askarbek-dev/burger-shop/internal/adapter/logger"
	"github.com/askarbek-dev/burger-shop/internal/domain"
	"github.com/askarbek-dev/burger-shop/internal/interfaces"
)

type ShopHandler struct {
	service interfaces.ShopService
	logger  logger.Logger
}

func NewShopHandler(service interfaces.ShopService, logger logger.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  logger,
	}
}

type CreateOrderRequest struct {
	CustomerAccount string             `json:"customer_account"`
	AttachedValue   uint64             `json:"attached_value"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	Item     string `json:"item"`
	Quantity uint32 `json:"quantity"`
}

type OrderResponse struct {
	ID         uint32             `json:"id"`
	Customer   string             `json:"customer"`
	Items      []OrderItemRequest `json:"items"`
	TotalPrice uint64             `json:"total_price"`
	Paid       bool               `json:"paid"`
	CreatedAt  time.Time          `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type ErrorResponse struct {
	Error    string  `json:"error"`
	Expected *uint64 `json:"expected,omitempty"`
}

// HandleOrders serves the /orders collection: POST creates and pays an
// order, GET enumerates every committed order.
func (h *ShopHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createOrder(w, r)
	case http.MethodGet:
		h.getAllOrders(w, r)
	default:
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
	}
}

// GetSingleOrder serves GET /orders/{id}.
func (h *ShopHandler) GetSingleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/orders/")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.respondError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	order, err := h.service.GetSingleOrder(r.Context(), uint32(id))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, orderToResponse(order))
}

func (h *ShopHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if strings.TrimSpace(req.CustomerAccount) == "" {
		h.respondError(w, "customer_account is required", http.StatusBadRequest, nil)
		return
	}

	cmd := interfaces.CreateOrderCommand{
		Call: interfaces.Call{
			Caller:        domain.AccountID(strings.TrimSpace(req.CustomerAccount)),
			AttachedValue: req.AttachedValue,
		},
		Lines: make([]interfaces.OrderLineCommand, len(req.Items)),
	}
	for i, item := range req.Items {
		cmd.Lines[i] = interfaces.OrderLineCommand{
			Item:     strings.TrimSpace(item.Item),
			Quantity: item.Quantity,
		}
	}

	order, err := h.service.CreateOrderAndPay(r.Context(), cmd)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, orderToResponse(order))
}

func (h *ShopHandler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetAllOrders(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoOrders) {
			h.respondJSON(w, http.StatusOK, OrderListResponse{Orders: []OrderResponse{}})
			return
		}
		h.respondServiceError(w, err)
		return
	}

	resp := OrderListResponse{Orders: make([]OrderResponse, len(entries))}
	for i := range entries {
		resp.Orders[i] = orderToResponse(&entries[i].Order)
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ShopHandler) respondServiceError(w http.ResponseWriter, err error) {
	var payErr *domain.IncorrectPaymentError
	switch {
	case errors.As(err, &payErr):
		h.respondJSON(w, http.StatusPaymentRequired, ErrorResponse{
			Error:    payErr.Error(),
			Expected: &payErr.Expected,
		})
	case errors.Is(err, domain.ErrInvalidCaller):
		h.respondError(w, err.Error(), http.StatusForbidden, nil)
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrEmptyLineItem),
		errors.Is(err, domain.ErrUnknownMenuItem):
		h.respondError(w, err.Error(), http.StatusBadRequest, nil)
	case errors.Is(err, domain.ErrTransferFailed):
		h.respondError(w, err.Error(), http.StatusPaymentRequired, nil)
	case errors.Is(err, domain.ErrOrderNotFound):
		h.respondError(w, err.Error(), http.StatusNotFound, nil)
	default:
		h.logger.Error("request_failed", "Unhandled service error", "", nil, err)
		h.respondError(w, "Internal server error", http.StatusInternalServerError, nil)
	}
}

func orderToResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemRequest, len(order.Lines))
	for i, line := range order.Lines {
		items[i] = OrderItemRequest{
			Item:     string(line.Item),
			Quantity: line.Quantity,
		}
	}
	return OrderResponse{
		ID:         order.ID,
		Customer:   string(order.Customer),
		Items:      items,
		TotalPrice: order.TotalPrice,
		Paid:       order.Paid,
		CreatedAt:  order.CreatedAt,
	}
}

func (h *ShopHandler) respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func (h *ShopHandler) respondError(w http.ResponseWriter, message string, statusCode int, expected *uint64) {
	h.respondJSON(w, statusCode, ErrorResponse{
		Error:    message,
		Expected: expected,
	})
}
