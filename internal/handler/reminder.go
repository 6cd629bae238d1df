package handler

import (
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/devicestore"
	"github.com/mithaqhq/mithaq/internal/service"
)

// ReminderHandler derives reminders from the dashboard snapshot and tracks
// dismissals per device.
type ReminderHandler struct {
	reminderService  *service.ReminderService
	dashboardService *service.DashboardService
	dismissed        devicestore.Store
}

func NewReminderHandler(reminderService *service.ReminderService, dashboardService *service.DashboardService, dismissed devicestore.Store) *ReminderHandler {
	return &ReminderHandler{
		reminderService:  reminderService,
		dashboardService: dashboardService,
		dismissed:        dismissed,
	}
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	dashboard, err := h.dashboardService.Snapshot(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to build dashboard for reminders", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load reminders")
		return
	}

	dismissed := h.dismissed.Load(r)
	reminders := h.reminderService.Reminders(dashboard, dismissed)

	writeJSON(w, http.StatusOK, reminders)
}

// Dismiss adds a reminder id to this device's dismissed set. Ids are stable,
// so a dismissed reminder stays hidden until conditions change or the set is
// reset.
func (h *ReminderHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing reminder id")
		return
	}

	ids := h.dismissed.Load(r)
	for _, existing := range ids {
		if existing == id {
			writeJSON(w, http.StatusOK, map[string]bool{"dismissed": true})
			return
		}
	}

	ids = append(ids, id)
	h.dismissed.Save(w, ids)

	writeJSON(w, http.StatusOK, map[string]bool{"dismissed": true})
}

// Reset clears this device's dismissed set.
func (h *ReminderHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.dismissed.Clear(w)
	writeJSON(w, http.StatusOK, map[string]bool{"reset": true})
}
