package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

const (
	// activityWindow is the trailing lookback for the recent-activity feed
	// and the budget-update entry.
	activityWindow = 7 * 24 * time.Hour

	// recentLimit bounds each per-source recent-completion query.
	recentLimit = 5

	// feedLimit bounds the merged activity feed.
	feedLimit = 10
)

// ErrNoUser guards the fetch: without an identity no queries are attempted.
var ErrNoUser = errors.New("no authenticated user")

// DashboardService assembles the cross-domain progress snapshot. Reads that
// do not depend on each other run concurrently; the dependent title lookups
// run in a second batch. Snapshots are cached per user for a short staleness
// window and invalidated by mutations elsewhere in the app.
type DashboardService struct {
	profileRepo    repository.ProfileRepository
	checklistRepo  repository.ChecklistRepository
	budgetRepo     repository.BudgetRepository
	noteRepo       repository.ModuleNoteRepository
	discussionRepo repository.DiscussionRepository
	learn          *LearnService

	ttl   time.Duration
	mu    sync.Mutex
	cache map[string]cachedSnapshot
}

type cachedSnapshot struct {
	dashboard *model.Dashboard
	fetchedAt time.Time
}

func NewDashboardService(
	profileRepo repository.ProfileRepository,
	checklistRepo repository.ChecklistRepository,
	budgetRepo repository.BudgetRepository,
	noteRepo repository.ModuleNoteRepository,
	discussionRepo repository.DiscussionRepository,
	learn *LearnService,
	ttl time.Duration,
) *DashboardService {
	return &DashboardService{
		profileRepo:    profileRepo,
		checklistRepo:  checklistRepo,
		budgetRepo:     budgetRepo,
		noteRepo:       noteRepo,
		discussionRepo: discussionRepo,
		learn:          learn,
		ttl:            ttl,
		cache:          make(map[string]cachedSnapshot),
	}
}

// Snapshot returns the user's dashboard, serving a cached copy when it is
// still within the staleness window. Either the full snapshot is produced or
// an error is returned; partial merges are never handed out.
func (s *DashboardService) Snapshot(ctx context.Context, userID string) (*model.Dashboard, error) {
	if userID == "" {
		return nil, ErrNoUser
	}

	s.mu.Lock()
	cached, ok := s.cache[userID]
	s.mu.Unlock()
	if ok && time.Since(cached.fetchedAt) < s.ttl {
		return cached.dashboard, nil
	}

	dashboard, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[userID] = cachedSnapshot{dashboard: dashboard, fetchedAt: time.Now()}
	s.mu.Unlock()

	return dashboard, nil
}

// Invalidate drops the cached snapshot after a mutation that touches
// checklist status, budgets, module notes, or discussion answers.
func (s *DashboardService) Invalidate(userID string) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}

func (s *DashboardService) fetch(ctx context.Context, userID string) (*model.Dashboard, error) {
	since := time.Now().Add(-activityWindow)

	var (
		profile       *model.Profile
		categories    []model.ChecklistCategory
		items         []model.ChecklistItem
		statuses      []model.ChecklistStatus
		budget        *model.Budget
		totalModules  int
		notes         []model.ModuleNote
		recentItems   []model.ChecklistStatus
		recentNotes   []model.ModuleNote
		recentAnswers []model.DiscussionAnswer
	)

	// Phase 1: independent reads fan out concurrently; latency is bounded by
	// the slowest query, not the sum.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = s.profileRepo.ByUserID(userID)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.checklistRepo.Categories()
		return err
	})
	g.Go(func() (err error) {
		items, err = s.checklistRepo.Items()
		return err
	})
	g.Go(func() (err error) {
		statuses, err = s.checklistRepo.CompletedStatuses(userID)
		return err
	})
	g.Go(func() (err error) {
		budget, err = s.budgetRepo.ByUserID(userID)
		if errors.Is(err, repository.ErrBudgetNotFound) {
			// Not yet created is a valid state, not a failure
			budget = nil
			return nil
		}
		return err
	})
	g.Go(func() (err error) {
		totalModules, err = s.learn.Count()
		return err
	})
	g.Go(func() (err error) {
		notes, err = s.noteRepo.Notes(userID)
		return err
	})
	g.Go(func() (err error) {
		recentItems, err = s.checklistRepo.RecentCompletions(userID, since, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		recentNotes, err = s.noteRepo.RecentCompletions(userID, since, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		recentAnswers, err = s.discussionRepo.RecentAnswers(userID, since, recentLimit)
		return err
	})

	err := g.Wait()
	if err != nil {
		return nil, fmt.Errorf("dashboard fetch failed: %w", err)
	}

	dashboard := &model.Dashboard{
		Profile:          profile,
		Categories:       categories,
		Budget:           budget,
		TotalItems:       len(items),
		CompletedItems:   len(statuses),
		TotalModules:     totalModules,
		CompletedModules: len(notes),
		ReadinessScore:   readinessScore(len(statuses), len(items)),
		DaysUntilWedding: daysUntil(profile.WeddingDate),
		GeneratedAt:      time.Now(),
	}

	if budget != nil {
		dashboard.TotalIncome = budget.TotalIncome()
		dashboard.TotalExpenses = budget.TotalExpenses()
		dashboard.Surplus = budget.Surplus()
	}

	activities, err := s.buildFeed(ctx, budget, recentItems, recentNotes, recentAnswers, since)
	if err != nil {
		return nil, fmt.Errorf("dashboard feed failed: %w", err)
	}
	dashboard.RecentActivity = activities

	return dashboard, nil
}

// buildFeed resolves display titles for the recent completions and merges
// every source into one time-ordered feed. Title lookups are batched: one
// IN-style query per entity type, never one per row.
func (s *DashboardService) buildFeed(
	ctx context.Context,
	budget *model.Budget,
	recentItems []model.ChecklistStatus,
	recentNotes []model.ModuleNote,
	recentAnswers []model.DiscussionAnswer,
	since time.Time,
) ([]model.Activity, error) {
	itemIDs := make([]string, 0, len(recentItems))
	for _, status := range recentItems {
		itemIDs = append(itemIDs, status.ItemID)
	}
	slugs := make([]string, 0, len(recentNotes))
	for _, note := range recentNotes {
		slugs = append(slugs, note.ModuleSlug)
	}
	promptIDs := make([]string, 0, len(recentAnswers))
	for _, answer := range recentAnswers {
		promptIDs = append(promptIDs, answer.PromptID)
	}

	var (
		itemTitles   map[string]string
		moduleTitles map[string]string
		promptTitles map[string]string
	)

	// Phase 2: dependent on phase 1's foreign keys
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		itemTitles, err = s.checklistRepo.ItemTitles(itemIDs)
		return err
	})
	g.Go(func() (err error) {
		moduleTitles, err = s.learn.Titles(slugs)
		return err
	})
	g.Go(func() (err error) {
		promptTitles, err = s.discussionRepo.PromptTitles(promptIDs)
		return err
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	activities := make([]model.Activity, 0, len(recentItems)+len(recentNotes)+len(recentAnswers)+1)

	for _, status := range recentItems {
		title, ok := itemTitles[status.ItemID]
		if !ok {
			title = "Checklist item"
		}
		activities = append(activities, model.Activity{
			ID:          "checklist-" + status.ID,
			Type:        model.ActivityChecklist,
			Title:       title,
			Description: "Completed a checklist item",
			Timestamp:   status.CompletedAt,
			Link:        "/app/checklist",
		})
	}

	for _, note := range recentNotes {
		title, ok := moduleTitles[note.ModuleSlug]
		if !ok {
			title = "Learning module"
		}
		activities = append(activities, model.Activity{
			ID:          "module-" + note.ID,
			Type:        model.ActivityModule,
			Title:       title,
			Description: "Completed a learning module",
			Timestamp:   note.CompletedAt,
			Link:        "/app/learn/" + note.ModuleSlug,
		})
	}

	for _, answer := range recentAnswers {
		title, ok := promptTitles[answer.PromptID]
		if !ok {
			title = "Discussion prompt"
		}
		activities = append(activities, model.Activity{
			ID:          "discussion-" + answer.ID,
			Type:        model.ActivityDiscussion,
			Title:       title,
			Description: "Answered a discussion prompt",
			Timestamp:   answer.UpdatedAt,
			Link:        "/app/discussions",
		})
	}

	if budget != nil && budget.UpdatedAt.After(since) {
		activities = append(activities, model.Activity{
			ID:          "budget-" + budget.ID,
			Type:        model.ActivityBudget,
			Title:       "Updated budget",
			Description: "Reviewed income and expenses",
			Timestamp:   budget.UpdatedAt,
			Link:        "/app/budget",
		})
	}

	return mergeFeed(activities), nil
}

// mergeFeed orders activities newest-first and truncates to the feed limit.
// The sort is stable: equal timestamps keep their insertion order.
func mergeFeed(activities []model.Activity) []model.Activity {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > feedLimit {
		activities = activities[:feedLimit]
	}
	return activities
}

// readinessScore is the completed share of checklist items as a rounded
// percentage; zero items yields zero, never a division by zero.
func readinessScore(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// daysUntil returns the whole days from today until the date, clamped at
// zero once the day arrives, or nil when no date is set.
func daysUntil(date *time.Time) *int {
	if date == nil {
		return nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	days := int(target.Sub(today).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
