// internal/handlers/cases/case_handler.go
package cases

import (
	"errors"
	"net/http"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/pkg/response"
	"caseflow-service/internal/service/audit"
	service "caseflow-service/internal/service/cases"

	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	caseService *service.Service
	ledger      *audit.Ledger
}

func NewCaseHandler(caseService *service.Service, ledger *audit.Ledger) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
		ledger:      ledger,
	}
}

// caseResponse carries the case plus which notification channels fired.
type caseResponse struct {
	Case          *casedomain.Case `json:"case"`
	Notifications interface{}      `json:"notifications"`
}

func (h *CaseHandler) CreateCase(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req casedomain.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	// Advisory serial check; the store does not enforce uniqueness.
	if _, err := h.caseService.FindBySerial(c.Request.Context(), req.Serial); err == nil {
		response.Error(c, http.StatusConflict, "a case with this serial number already exists", nil)
		return
	} else if !errors.Is(err, xerrors.ErrNotFound) {
		response.FromError(c, err)
		return
	}

	created, notified, err := h.caseService.Create(c.Request.Context(), act, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "case created", caseResponse{
		Case:          created,
		Notifications: notified,
	})
}

func (h *CaseHandler) GetCase(c *gin.Context) {
	detail, err := h.caseService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "case retrieved", detail)
}

func (h *CaseHandler) ListCases(c *gin.Context) {
	openOnly := c.Query("open") == "true"
	list, err := h.caseService.List(c.Request.Context(), openOnly)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "cases retrieved", list)
}

func (h *CaseHandler) UpdateCase(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req casedomain.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	updated, notified, err := h.caseService.Update(c.Request.Context(), act, c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "case updated", caseResponse{
		Case:          updated,
		Notifications: notified,
	})
}

func (h *CaseHandler) DeleteCase(c *gin.Context) {
	act, _ := actor.FromContext(c)

	if err := h.caseService.Delete(c.Request.Context(), act, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "case deleted", nil)
}

// GetCaseHistory returns the case's ledger entries newest-first.
func (h *CaseHandler) GetCaseHistory(c *gin.Context) {
	entries, err := h.ledger.ForCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "history retrieved", entries)
}
