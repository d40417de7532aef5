package http

import (
	"encoding/json"
	"net/http"

	"github.com/askarbek-dev/burger-shop/internal/adapter/logger"
	"github.com/askarbek-dev/burger-shop/internal/adapter/wallet"
)

// AccountHandler opens funded wallet accounts so a demo customer can pay.
type AccountHandler struct {
	wallet *wallet.Wallet
	logger logger.Logger
}

func NewAccountHandler(w *wallet.Wallet, logger logger.Logger) *AccountHandler {
	return &AccountHandler{
		wallet: w,
		logger: logger,
	}
}

type OpenAccountRequest struct {
	InitialBalance uint64 `json:"initial_balance"`
}

type OpenAccountResponse struct {
	AccountID string `json:"account_id"`
	Balance   uint64 `json:"balance"`
}

func (h *AccountHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Method not allowed"})
		return
	}

	var req OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return
	}

	id := h.wallet.OpenAccount(req.InitialBalance)

	h.logger.Info("account_opened", "Wallet account opened", "", map[string]interface{}{
		"account_id": string(id),
		"balance":    req.InitialBalance,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(OpenAccountResponse{
		AccountID: string(id),
		Balance:   req.InitialBalance,
	})
}
