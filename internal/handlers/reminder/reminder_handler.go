// internal/handlers/reminder/reminder_handler.go
package reminder

import (
	"net/http"

	"caseflow-service/internal/domain/reminder"
	"caseflow-service/internal/pkg/actor"
	"caseflow-service/internal/pkg/response"
	service "caseflow-service/internal/service/reminders"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderService *service.Service
}

func NewReminderHandler(reminderService *service.Service) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req reminder.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	created, err := h.reminderService.Create(c.Request.Context(), act, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "reminder created", created)
}

// ListReminders returns the reminders the caller assigned or was assigned.
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	act, _ := actor.FromContext(c)

	list, err := h.reminderService.ListFor(c.Request.Context(), act.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "reminders retrieved", list)
}

type updateStatusRequest struct {
	Status reminder.Status `json:"status" binding:"required"`
}

func (h *ReminderHandler) UpdateReminderStatus(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	updated, err := h.reminderService.UpdateStatus(c.Request.Context(), act, c.Param("id"), req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "reminder status updated", updated)
}

func (h *ReminderHandler) MarkReminderRead(c *gin.Context) {
	act, _ := actor.FromContext(c)

	updated, err := h.reminderService.MarkRead(c.Request.Context(), act, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "reminder marked read", updated)
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	act, _ := actor.FromContext(c)

	if err := h.reminderService.Delete(c.Request.Context(), act, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "reminder deleted", nil)
}
