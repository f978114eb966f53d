package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ysalhi/tamwil-backend/internal/api/httpx"
	"github.com/ysalhi/tamwil-backend/internal/middleware"
	"github.com/ysalhi/tamwil-backend/internal/models"
	"github.com/ysalhi/tamwil-backend/internal/services"
)

type ProjectHandler struct {
	Projects    *services.ProjectService
	Investments *services.InvestmentService
	Reports     *services.ReportService
}

func NewProjectHandler(ps *services.ProjectService, is *services.InvestmentService, rs *services.ReportService) *ProjectHandler {
	return &ProjectHandler{Projects: ps, Investments: is, Reports: rs}
}

func (h *ProjectHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.ListActive(r.Context())
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Mine(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	projects, err := h.Projects.ListByOwner(r.Context(), uid)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Title             string             `json:"title"`
		Description       string             `json:"description"`
		FundingGoal       int64              `json:"funding_goal"`
		MinimumInvestment int64              `json:"minimum_investment"`
		EquityOffered     float64            `json:"equity_offered"`
		Deadline          time.Time          `json:"deadline"`
		Milestones        []models.Milestone `json:"milestones"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	project, err := h.Projects.Create(r.Context(), services.CreateProjectInput{
		OwnerID:           uid,
		Title:             req.Title,
		Description:       req.Description,
		FundingGoal:       req.FundingGoal,
		MinimumInvestment: req.MinimumInvestment,
		EquityOffered:     req.EquityOffered,
		Deadline:          req.Deadline,
		Milestones:        req.Milestones,
	})
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Submit(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	project, err := h.Projects.Submit(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Invest(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	inv, err := h.Investments.Invest(r.Context(), uid, chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, inv)
}

func (h *ProjectHandler) InvestDirect(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	inv, err := h.Investments.InvestDirect(r.Context(), uid, chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, inv)
}

func (h *ProjectHandler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	list, err := h.Investments.ListByProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *ProjectHandler) MyInvestments(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	list, err := h.Investments.ListByInvestor(r.Context(), uid)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *ProjectHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	rep, err := h.Reports.Submit(r.Context(), uid, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, rep)
}

func (h *ProjectHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	list, err := h.Reports.ListPublished(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteAppError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}
