package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/service"
)

type ProfileHandler struct {
	profileService   *service.ProfileService
	dashboardService *service.DashboardService
}

func NewProfileHandler(profileService *service.ProfileService, dashboardService *service.DashboardService) *ProfileHandler {
	return &ProfileHandler{
		profileService:   profileService,
		dashboardService: dashboardService,
	}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile := ctxkeys.Profile(r.Context())
	writeJSON(w, http.StatusOK, profile)
}

type profileRequest struct {
	Name          string `json:"name"`
	DateOfBirth   string `json:"date_of_birth"`
	WeddingDate   string `json:"wedding_date"`
	MaritalStatus string `json:"marital_status"`
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req profileRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	update := service.ProfileUpdate{
		Name:          req.Name,
		MaritalStatus: req.MaritalStatus,
	}

	update.DateOfBirth, err = parseDate(req.DateOfBirth)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date_of_birth, expected YYYY-MM-DD")
		return
	}

	update.WeddingDate, err = parseDate(req.WeddingDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid wedding_date, expected YYYY-MM-DD")
		return
	}

	profile, err := h.profileService.Update(user.ID, update)
	if err != nil {
		slog.Error("failed to update profile", "error", err, "user_id", user.ID)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Wedding date feeds the countdown and reminders
	h.dashboardService.Invalidate(user.ID)

	writeJSON(w, http.StatusOK, profile)
}

// parseDate accepts YYYY-MM-DD; an empty string clears the date.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
