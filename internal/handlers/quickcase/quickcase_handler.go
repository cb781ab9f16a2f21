// internal/handlers/quickcase/quickcase_handler.go
package quickcase

import (
	"net/http"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	qc "caseflow-service/internal/domain/quickcase"
	"caseflow-service/internal/pkg/actor"
	"caseflow-service/internal/pkg/response"
	service "caseflow-service/internal/service/quickcase"

	"github.com/gin-gonic/gin"
)

type QuickCaseHandler struct {
	quickCaseService *service.Service
}

func NewQuickCaseHandler(quickCaseService *service.Service) *QuickCaseHandler {
	return &QuickCaseHandler{quickCaseService: quickCaseService}
}

func (h *QuickCaseHandler) CreateQuickCase(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req qc.CreateQuickCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	created, err := h.quickCaseService.Create(c.Request.Context(), act, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "quick case created", created)
}

func (h *QuickCaseHandler) ListQuickCases(c *gin.Context) {
	list, err := h.quickCaseService.List(c.Request.Context(), qc.Status(c.Query("status")))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "quick cases retrieved", list)
}

// promoteRequest bundles the full customer and case payloads the
// promotion needs. The customer's phone is taken from the lead itself.
type promoteRequest struct {
	Customer customer.CreateCustomerRequest `json:"customer" binding:"required"`
	Case     casedomain.CreateCaseRequest   `json:"case" binding:"required"`
}

func (h *QuickCaseHandler) PromoteQuickCase(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req promoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.quickCaseService.Promote(c.Request.Context(), act, c.Param("id"), &req.Customer, &req.Case)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "quick case promoted", result)
}

func (h *QuickCaseHandler) DeleteQuickCase(c *gin.Context) {
	if err := h.quickCaseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "quick case deleted", nil)
}
