package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ysalhi/tamwil-backend/internal/api/httpx"
	"github.com/ysalhi/tamwil-backend/internal/middleware"
	"github.com/ysalhi/tamwil-backend/internal/services"
)

type WalletHandler struct {
	Wallets *services.WalletService
}

func NewWalletHandler(ws *services.WalletService) *WalletHandler { return &WalletHandler{Wallets: ws} }

func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	wallet, err := h.Wallets.Get(r.Context(), uid)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, wallet)
}

func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	wallet, err := h.Wallets.Get(r.Context(), uid)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}

	limit, offset := 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	txns, err := h.Wallets.Transactions(r.Context(), wallet.ID, limit, offset)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, txns)
}

func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	wallet, err := h.Wallets.Get(r.Context(), uid)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	txn, err := h.Wallets.Deposit(r.Context(), wallet.ID, req.Amount)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, txn)
}

func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Amount   int64  `json:"amount"`
		RIB      string `json:"rib"`
		BankName string `json:"bank_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	wr, err := h.Wallets.RequestWithdrawal(r.Context(), uid, req.Amount, req.RIB, req.BankName)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, wr)
}

func (h *WalletHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	list, err := h.Wallets.Withdrawals(r.Context(), uid)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
