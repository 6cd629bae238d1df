package service

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mithaqhq/mithaq/internal/model"
)

type stubNoteRepo struct {
	notes             []model.ModuleNote
	recentCompletions []model.ModuleNote
	completed         []string
}

func (s *stubNoteRepo) Notes(userID string) ([]model.ModuleNote, error) {
	return s.notes, nil
}

func (s *stubNoteRepo) Complete(userID, moduleSlug string, completedAt time.Time) error {
	s.completed = append(s.completed, moduleSlug)
	return nil
}

func (s *stubNoteRepo) Uncomplete(userID, moduleSlug string) error {
	return nil
}

func (s *stubNoteRepo) RecentCompletions(userID string, since time.Time, limit int) ([]model.ModuleNote, error) {
	return s.recentCompletions, nil
}

func writeModule(t *testing.T, dir, slug, title string, order int, body string) {
	t.Helper()

	content := "---\ntitle: " + title + "\ndescription: Test module.\norder: " +
		strconv.Itoa(order) + "\n---\n\n" + body + "\n"
	path := filepath.Join(dir, "modules", slug+".md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestLearnService(t *testing.T, repo *stubNoteRepo) *LearnService {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "modules"), 0o755); err != nil {
		t.Fatal(err)
	}

	writeModule(t, dir, "mahr-basics", "Mahr Basics", 2, "## The gift\n\nContent about mahr.")
	writeModule(t, dir, "nikah-contract", "The Nikah Contract", 1, "## Pillars\n\nContent about the contract.")
	writeModule(t, dir, "first-year", "The First Year", 3, "Adjusting to shared life.")

	return NewLearnService(dir, repo)
}

func TestLearnModulesOrderAndCompletion(t *testing.T) {
	repo := &stubNoteRepo{
		notes: []model.ModuleNote{
			{UserID: "u1", ModuleSlug: "mahr-basics", CompletedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestLearnService(t, repo)

	modules, err := svc.Modules("u1")
	if err != nil {
		t.Fatalf("Modules() error = %v", err)
	}
	if len(modules) != 3 {
		t.Fatalf("got %d modules, want 3", len(modules))
	}

	// Frontmatter order wins over file name order
	wantSlugs := []string{"nikah-contract", "mahr-basics", "first-year"}
	for i, want := range wantSlugs {
		if modules[i].Slug != want {
			t.Errorf("modules[%d].Slug = %q, want %q", i, modules[i].Slug, want)
		}
	}

	if !modules[1].Completed || modules[1].CompletedAt == nil {
		t.Error("mahr-basics should be marked completed")
	}
	if modules[0].Completed {
		t.Error("nikah-contract should not be completed")
	}
	if modules[0].HTMLContent != "" {
		t.Error("listing must omit content bodies")
	}
}

func TestLearnModuleRendersContent(t *testing.T) {
	svc := newTestLearnService(t, &stubNoteRepo{})

	module, err := svc.Module("u1", "nikah-contract")
	if err != nil {
		t.Fatalf("Module() error = %v", err)
	}
	if module.Title != "The Nikah Contract" {
		t.Errorf("Title = %q", module.Title)
	}
	if !strings.Contains(module.HTMLContent, "<h2") {
		t.Errorf("HTMLContent missing rendered heading: %q", module.HTMLContent)
	}
	if module.ReadTime < 1 {
		t.Errorf("ReadTime = %d, want at least 1", module.ReadTime)
	}
}

func TestLearnModuleNotFound(t *testing.T) {
	svc := newTestLearnService(t, &stubNoteRepo{})

	_, err := svc.Module("u1", "no-such-module")
	if !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("Module() error = %v, want ErrModuleNotFound", err)
	}
}

func TestLearnCompleteValidatesSlug(t *testing.T) {
	repo := &stubNoteRepo{}
	svc := newTestLearnService(t, repo)

	if err := svc.Complete("u1", "mahr-basics"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if len(repo.completed) != 1 || repo.completed[0] != "mahr-basics" {
		t.Errorf("completed = %v", repo.completed)
	}

	err := svc.Complete("u1", "no-such-module")
	if !errors.Is(err, ErrModuleNotFound) {
		t.Errorf("Complete() error = %v, want ErrModuleNotFound", err)
	}
	if len(repo.completed) != 1 {
		t.Error("invalid slug must not reach the repository")
	}
}

func TestLearnTitles(t *testing.T) {
	svc := newTestLearnService(t, &stubNoteRepo{})

	titles, err := svc.Titles([]string{"mahr-basics", "no-such-module"})
	if err != nil {
		t.Fatalf("Titles() error = %v", err)
	}
	if titles["mahr-basics"] != "Mahr Basics" {
		t.Errorf("titles = %v", titles)
	}
	if _, ok := titles["no-such-module"]; ok {
		t.Error("unknown slug must be absent, not empty")
	}
}
