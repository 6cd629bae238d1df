package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mithaqhq/mithaq/internal/config"
	"github.com/mithaqhq/mithaq/internal/db"
	"github.com/mithaqhq/mithaq/internal/devicestore"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/service"
	"github.com/mithaqhq/mithaq/internal/storage"
)

// App holds the wired service graph. Handlers receive services from here; no
// globals besides the logger.
type App struct {
	Cfg *config.Config
	DB  *sqlx.DB

	AuthService       *service.AuthService
	UserService       *service.UserService
	ProfileService    *service.ProfileService
	ChecklistService  *service.ChecklistService
	BudgetService     *service.BudgetService
	MahrService       *service.MahrService
	WeddingService    *service.WeddingService
	SavingsService    *service.SavingsService
	LearnService      *service.LearnService
	DiscussionService *service.DiscussionService
	ResourceService   *service.ResourceService
	DashboardService  *service.DashboardService
	ReminderService   *service.ReminderService

	// DocumentService is nil when no S3-compatible storage is configured.
	DocumentService *service.DocumentService

	DismissedReminders devicestore.Store
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	checklistRepository := repository.NewChecklistRepository(database)
	budgetRepository := repository.NewBudgetRepository(database)
	mahrRepository := repository.NewMahrRepository(database)
	weddingRepository := repository.NewWeddingRepository(database)
	savingsRepository := repository.NewSavingsRepository(database)
	moduleNoteRepository := repository.NewModuleNoteRepository(database)
	discussionRepository := repository.NewDiscussionRepository(database)
	resourceRepository := repository.NewResourceRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)
	userService := service.NewUserService(userRepository)
	profileService := service.NewProfileService(profileRepository)
	checklistService := service.NewChecklistService(checklistRepository)
	budgetService := service.NewBudgetService(budgetRepository)
	mahrService := service.NewMahrService(mahrRepository)
	weddingService := service.NewWeddingService(weddingRepository)
	savingsService := service.NewSavingsService(savingsRepository)
	learnService := service.NewLearnService(cfg.ContentPath, moduleNoteRepository)
	discussionService := service.NewDiscussionService(discussionRepository)
	resourceService := service.NewResourceService(resourceRepository)
	dashboardService := service.NewDashboardService(
		profileRepository,
		checklistRepository,
		budgetRepository,
		moduleNoteRepository,
		discussionRepository,
		learnService,
		cfg.DashboardCacheTTL,
	)
	reminderService := service.NewReminderService()

	app := &App{
		Cfg:                cfg,
		DB:                 database,
		AuthService:        authService,
		UserService:        userService,
		ProfileService:     profileService,
		ChecklistService:   checklistService,
		BudgetService:      budgetService,
		MahrService:        mahrService,
		WeddingService:     weddingService,
		SavingsService:     savingsService,
		LearnService:       learnService,
		DiscussionService:  discussionService,
		ResourceService:    resourceService,
		DashboardService:   dashboardService,
		ReminderService:    reminderService,
		DismissedReminders: devicestore.NewCookieStore(devicestore.DismissedRemindersKey, cfg.IsProduction()),
	}

	if cfg.HasDocumentStorage() {
		documentStorage, err := storage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %v", err)
		}
		documentRepository := repository.NewDocumentRepository(database)
		app.DocumentService = service.NewDocumentService(documentRepository, documentStorage)
	}

	return app, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
