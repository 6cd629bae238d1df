package routes

import (
	"net/http"

	"github.com/mithaqhq/mithaq/internal/app"
	"github.com/mithaqhq/mithaq/internal/handler"
	"github.com/mithaqhq/mithaq/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService, app.DashboardService)
	checklist := handler.NewChecklistHandler(app.ChecklistService, app.DashboardService)
	budget := handler.NewBudgetHandler(app.BudgetService, app.DashboardService)
	mahr := handler.NewMahrHandler(app.MahrService)
	wedding := handler.NewWeddingHandler(app.WeddingService)
	savings := handler.NewSavingsHandler(app.SavingsService)
	learn := handler.NewLearnHandler(app.LearnService, app.DashboardService)
	discussion := handler.NewDiscussionHandler(app.DiscussionService, app.DashboardService)
	resource := handler.NewResourceHandler(app.ResourceService)
	dashboard := handler.NewDashboardHandler(app.DashboardService)
	reminder := handler.NewReminderHandler(app.ReminderService, app.DashboardService, app.DismissedReminders)
	planExport := handler.NewExportHandler(
		app.ProfileService,
		app.ChecklistService,
		app.BudgetService,
		app.MahrService,
		app.WeddingService,
		app.SavingsService,
		app.DiscussionService,
	)

	rateLimiter := middleware.RateLimitAuth()

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Profile
	mux.HandleFunc("GET /app/profile", middleware.RequireAuth(profile.Get))
	mux.HandleFunc("PUT /app/profile", middleware.RequireAuth(profile.Update))

	// Dashboard & reminders
	mux.HandleFunc("GET /app/dashboard", middleware.RequireAuth(dashboard.Snapshot))
	mux.HandleFunc("GET /app/reminders", middleware.RequireAuth(reminder.List))
	mux.HandleFunc("POST /app/reminders/{id}/dismiss", middleware.RequireAuth(reminder.Dismiss))
	mux.HandleFunc("DELETE /app/reminders/dismissed", middleware.RequireAuth(reminder.Reset))

	// Checklist
	mux.HandleFunc("GET /app/checklist", middleware.RequireAuth(checklist.Overview))
	mux.HandleFunc("POST /app/checklist/{id}/complete", middleware.RequireAuth(checklist.Complete))
	mux.HandleFunc("DELETE /app/checklist/{id}/complete", middleware.RequireAuth(checklist.Uncomplete))

	// Household budget
	mux.HandleFunc("GET /app/budget", middleware.RequireAuth(budget.Get))
	mux.HandleFunc("PUT /app/budget", middleware.RequireAuth(budget.Save))

	// Mahr
	mux.HandleFunc("GET /app/mahr", middleware.RequireAuth(mahr.Get))
	mux.HandleFunc("GET /app/mahr/export", middleware.RequireAuth(mahr.ExportCSV))
	mux.HandleFunc("PUT /app/mahr", middleware.RequireAuth(mahr.Save))

	// Wedding budget
	mux.HandleFunc("GET /app/wedding", middleware.RequireAuth(wedding.Summary))
	mux.HandleFunc("GET /app/wedding/export", middleware.RequireAuth(wedding.ExportCSV))
	mux.HandleFunc("POST /app/wedding", middleware.RequireAuth(wedding.Save))
	mux.HandleFunc("DELETE /app/wedding/{id}", middleware.RequireAuth(wedding.Delete))

	// Savings goals
	mux.HandleFunc("GET /app/savings", middleware.RequireAuth(savings.Goals))
	mux.HandleFunc("GET /app/savings/export", middleware.RequireAuth(savings.ExportCSV))
	mux.HandleFunc("POST /app/savings", middleware.RequireAuth(savings.Save))
	mux.HandleFunc("DELETE /app/savings/{id}", middleware.RequireAuth(savings.Delete))

	// Learning modules
	mux.HandleFunc("GET /app/modules", middleware.RequireAuth(learn.Modules))
	mux.HandleFunc("GET /app/modules/{slug}", middleware.RequireAuth(learn.Module))
	mux.HandleFunc("POST /app/modules/{slug}/complete", middleware.RequireAuth(learn.Complete))
	mux.HandleFunc("DELETE /app/modules/{slug}/complete", middleware.RequireAuth(learn.Uncomplete))

	// Discussion prompts
	mux.HandleFunc("GET /app/discussions", middleware.RequireAuth(discussion.Prompts))
	mux.HandleFunc("PUT /app/discussions/{id}/answer", middleware.RequireAuth(discussion.Answer))

	// Resource library
	mux.HandleFunc("GET /app/resources", middleware.RequireAuth(resource.List))

	// Full-plan export
	mux.HandleFunc("GET /app/export", middleware.RequireAuth(planExport.PlanJSON))

	// Documents require configured storage
	if app.DocumentService != nil {
		document := handler.NewDocumentHandler(app.DocumentService)
		mux.HandleFunc("GET /app/documents", middleware.RequireAuth(document.List))
		mux.HandleFunc("POST /app/documents", middleware.RequireAuth(document.Upload))
		mux.HandleFunc("DELETE /app/documents/{id}", middleware.RequireAuth(document.Delete))
	}

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.ProfileService),
	)
}
