package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mithaqhq/mithaq/internal/markdown"
	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
)

var ErrModuleNotFound = errors.New("module not found")

// LearnService serves learning modules from markdown content files and joins
// in per-user completion notes.
type LearnService struct {
	parser      *markdown.Parser
	contentPath string
	noteRepo    repository.ModuleNoteRepository
}

func NewLearnService(contentPath string, noteRepo repository.ModuleNoteRepository) *LearnService {
	return &LearnService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
		noteRepo:    noteRepo,
	}
}

// Modules lists every module in reading order with the user's completion
// state. Content bodies are omitted from the listing.
func (s *LearnService) Modules(userID string) ([]*model.Module, error) {
	modules, err := s.allModules(false)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.Notes(userID)
	if err != nil {
		return nil, err
	}

	completedAt := make(map[string]time.Time, len(notes))
	for _, note := range notes {
		completedAt[note.ModuleSlug] = note.CompletedAt
	}

	for _, module := range modules {
		if at, ok := completedAt[module.Slug]; ok {
			module.Completed = true
			at := at
			module.CompletedAt = &at
		}
	}

	return modules, nil
}

// Module returns a single module with rendered HTML content.
func (s *LearnService) Module(userID, slug string) (*model.Module, error) {
	module, err := s.readModule(slug, true)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.Notes(userID)
	if err != nil {
		return nil, err
	}

	for _, note := range notes {
		if note.ModuleSlug == slug {
			module.Completed = true
			at := note.CompletedAt
			module.CompletedAt = &at
			break
		}
	}

	return module, nil
}

func (s *LearnService) Complete(userID, slug string) error {
	// Validate the slug refers to an existing module
	_, err := s.readModule(slug, false)
	if err != nil {
		return err
	}

	return s.noteRepo.Complete(userID, slug, time.Now())
}

func (s *LearnService) Uncomplete(userID, slug string) error {
	return s.noteRepo.Uncomplete(userID, slug)
}

// Count returns the number of available modules.
func (s *LearnService) Count() (int, error) {
	modules, err := s.allModules(false)
	if err != nil {
		return 0, err
	}
	return len(modules), nil
}

// Titles resolves module titles for a set of slugs in one pass over the
// content directory.
func (s *LearnService) Titles(slugs []string) (map[string]string, error) {
	titles := make(map[string]string, len(slugs))
	if len(slugs) == 0 {
		return titles, nil
	}

	wanted := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		wanted[slug] = true
	}

	modules, err := s.allModules(false)
	if err != nil {
		return nil, err
	}

	for _, module := range modules {
		if wanted[module.Slug] {
			titles[module.Slug] = module.Title
		}
	}

	return titles, nil
}

func (s *LearnService) allModules(withContent bool) ([]*model.Module, error) {
	pattern := filepath.Join(s.contentPath, "modules", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var modules []*model.Module
	for _, file := range files {
		slug := strings.TrimSuffix(filepath.Base(file), ".md")
		module, err := s.readModule(slug, withContent)
		if err != nil {
			continue
		}
		modules = append(modules, module)
	}

	sort.Slice(modules, func(i, j int) bool {
		if modules[i].Order != modules[j].Order {
			return modules[i].Order < modules[j].Order
		}
		return modules[i].Slug < modules[j].Slug
	})

	return modules, nil
}

func (s *LearnService) readModule(slug string, withContent bool) (*model.Module, error) {
	path := filepath.Join(s.contentPath, "modules", slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, slug)
	}

	htmlContent, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, err
	}

	module := &model.Module{
		Slug:     slug,
		ReadTime: readTime(string(content)),
	}
	if withContent {
		module.HTMLContent = string(htmlContent)
	}

	if title, ok := meta["title"].(string); ok {
		module.Title = title
	}
	if description, ok := meta["description"].(string); ok {
		module.Description = description
	}
	if order, ok := meta["order"].(int); ok {
		module.Order = order
	} else if orderF, ok := meta["order"].(float64); ok {
		module.Order = int(orderF)
	}

	return module, nil
}

// readTime estimates minutes at ~200 words per minute, minimum 1.
func readTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
