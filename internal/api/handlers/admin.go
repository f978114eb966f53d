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

type AdminHandler struct {
	Admin       *services.AdminService
	Withdrawals *services.WithdrawalService
	Projects    *services.ProjectService
	Reports     *services.ReportService
	Users       *services.UserService
}

func NewAdminHandler(as *services.AdminService, wd *services.WithdrawalService, ps *services.ProjectService, rs *services.ReportService, us *services.UserService) *AdminHandler {
	return &AdminHandler{Admin: as, Withdrawals: wd, Projects: ps, Reports: rs, Users: us}
}

// ---------- KYC ----------

func (h *AdminHandler) UpdateKYC(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var req struct {
		Status models.KYCStatus `json:"status"`
		Note   string           `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	u, err := h.Admin.UpdateUserKYC(r.Context(), adminID, chi.URLParam(r, "id"), req.Status, req.Note)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

// ---------- Projects ----------

func (h *AdminHandler) PendingProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.ListPendingApproval(r.Context())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, projects)
}

func (h *AdminHandler) ApproveProject(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var req struct {
		Message       string   `json:"message"`
		EquityOffered *float64 `json:"equity_offered"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	project, err := h.Admin.ApproveProject(r.Context(), adminID, chi.URLParam(r, "id"), req.Message, req.EquityOffered)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

func (h *AdminHandler) RejectProject(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	project, err := h.Admin.RejectProject(r.Context(), adminID, chi.URLParam(r, "id"), req.Message)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

func (h *AdminHandler) FailProject(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	project, err := h.Projects.MarkFailed(r.Context(), adminID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

// ---------- Withdrawals ----------

func (h *AdminHandler) PendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	list, err := h.Withdrawals.ListPending(r.Context())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var req struct {
		Note string `json:"note"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	wr, err := h.Withdrawals.Approve(r.Context(), chi.URLParam(r, "id"), adminID, req.Note)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, wr)
}

func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var req struct {
		Note string `json:"note"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	wr, err := h.Withdrawals.Reject(r.Context(), chi.URLParam(r, "id"), adminID, req.Note)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, wr)
}

func (h *AdminHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	wr, err := h.Withdrawals.Complete(r.Context(), chi.URLParam(r, "id"), adminID)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, wr)
}

// ---------- Reports ----------

func (h *AdminHandler) PendingReports(w http.ResponseWriter, r *http.Request) {
	list, err := h.Reports.ListPending(r.Context())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) PublishReport(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	rep, err := h.Reports.Publish(r.Context(), adminID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rep)
}

func (h *AdminHandler) RejectReport(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	rep, err := h.Reports.Reject(r.Context(), adminID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rep)
}

// ---------- Settings ----------

func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	list, err := h.Admin.Settings(r.Context())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *AdminHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.UserID(r.Context())
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	if err := h.Admin.UpdateSetting(r.Context(), adminID, req.Key, req.Value); err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
