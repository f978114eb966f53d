package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ysalhi/tamwil-backend/internal/api/handlers"
	"github.com/ysalhi/tamwil-backend/internal/auth"
	"github.com/ysalhi/tamwil-backend/internal/config"
	"github.com/ysalhi/tamwil-backend/internal/middleware"
	"github.com/ysalhi/tamwil-backend/internal/models"
	"github.com/ysalhi/tamwil-backend/internal/services"
)

type Deps struct {
	Cfg         config.Config
	TM          *auth.TokenManager
	Users       *services.UserService
	Wallets     *services.WalletService
	Investments *services.InvestmentService
	Withdrawals *services.WithdrawalService
	Projects    *services.ProjectService
	Admin       *services.AdminService
	Marketplace *services.MarketplaceService
	Reports     *services.ReportService
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	authH := handlers.NewAuthHandler(d.Users)
	walletH := handlers.NewWalletHandler(d.Wallets)
	projectH := handlers.NewProjectHandler(d.Projects, d.Investments, d.Reports)
	adminH := handlers.NewAdminHandler(d.Admin, d.Withdrawals, d.Projects, d.Reports, d.Users)
	marketH := handlers.NewMarketplaceHandler(d.Marketplace)

	authMW := middleware.NewAuthMiddleware(d.TM)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- public ----------
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)
		r.Get("/projects", projectH.ListActive)
		r.Get("/projects/{id}", projectH.Get)
		r.Get("/projects/{id}/reports", projectH.ListReports)

		// ---------- authenticated ----------
		r.Group(func(r chi.Router) {
			r.Use(authMW.Auth)

			r.Get("/me", authH.Me)

			// wallet
			r.Get("/wallet", walletH.Get)
			r.Get("/wallet/transactions", walletH.Transactions)
			r.Post("/wallet/deposit", walletH.Deposit)
			r.Post("/wallet/withdrawals", walletH.RequestWithdrawal)
			r.Get("/wallet/withdrawals", walletH.Withdrawals)

			// investing
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleInvestor))
				r.Post("/projects/{id}/invest", projectH.Invest)
				r.Post("/projects/{id}/invest-direct", projectH.InvestDirect)
				r.Get("/investments", projectH.MyInvestments)
			})

			// project owners
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleProjectOwner))
				r.Post("/projects", projectH.Create)
				r.Get("/projects/mine", projectH.Mine)
				r.Post("/projects/{id}/submit", projectH.Submit)
				r.Post("/projects/{id}/reports", projectH.SubmitReport)
			})

			// marketplace
			r.Get("/services", marketH.ListServices)
			r.Post("/services/{id}/request", marketH.RequestService)
			r.Get("/service-requests", marketH.MyRequests)

			// investor-visible investment roster
			r.Get("/projects/{id}/investments", projectH.ListInvestments)

			// ---------- admin ----------
			r.Route("/admin", func(r chi.Router) {
				r.With(middleware.RequireAdmin).Get("/users", adminH.ListUsers)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(models.RoleAdminCompliance))
					r.Post("/users/{id}/kyc", adminH.UpdateKYC)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(models.RoleAdminSupervisor))
					r.Get("/projects/pending", adminH.PendingProjects)
					r.Post("/projects/{id}/approve", adminH.ApproveProject)
					r.Post("/projects/{id}/reject", adminH.RejectProject)
					r.Post("/projects/{id}/fail", adminH.FailProject)
					r.Get("/reports/pending", adminH.PendingReports)
					r.Post("/reports/{id}/publish", adminH.PublishReport)
					r.Post("/reports/{id}/reject", adminH.RejectReport)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(models.RoleAdminFinance))
					r.Get("/withdrawals/pending", adminH.PendingWithdrawals)
					r.Post("/withdrawals/{id}/approve", adminH.ApproveWithdrawal)
					r.Post("/withdrawals/{id}/reject", adminH.RejectWithdrawal)
					r.Post("/withdrawals/{id}/complete", adminH.CompleteWithdrawal)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(models.RoleAdminContent))
					r.Get("/settings", adminH.Settings)
					r.Put("/settings", adminH.UpdateSetting)
					r.Post("/services", marketH.CreateService)
					r.Put("/services/{id}", marketH.UpdateService)
					r.Post("/service-requests/{id}/advance", marketH.AdvanceRequest)
				})
			})
		})
	})

	return r
}
