package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ysalhi/tamwil-backend/internal/api/httpx"
	"github.com/ysalhi/tamwil-backend/internal/middleware"
	"github.com/ysalhi/tamwil-backend/internal/models"
	"github.com/ysalhi/tamwil-backend/internal/services"
)

type MarketplaceHandler struct {
	Marketplace *services.MarketplaceService
}

func NewMarketplaceHandler(ms *services.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{Marketplace: ms}
}

func (h *MarketplaceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.RoleFrom(r.Context())
	list, err := h.Marketplace.ListServices(r.Context(), role.IsAdmin())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *MarketplaceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var svc models.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	created, err := h.Marketplace.CreateService(r.Context(), adminID, svc)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *MarketplaceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var svc models.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	svc.ID = chi.URLParam(r, "id")
	updated, err := h.Marketplace.UpdateService(r.Context(), adminID, svc)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *MarketplaceHandler) RequestService(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Details string `json:"details"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	created, err := h.Marketplace.RequestService(r.Context(), uid, chi.URLParam(r, "id"), req.Details)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *MarketplaceHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	list, err := h.Marketplace.ListRequestsByClient(r.Context(), uid)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *MarketplaceHandler) AdvanceRequest(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Status models.ServiceRequestStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	updated, err := h.Marketplace.AdvanceRequest(r.Context(), uid, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}
