// internal/handlers/customer/customer_handler.go
package customer

import (
	"errors"
	"net/http"

	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/pkg/response"
	"caseflow-service/internal/service/audit"
	service "caseflow-service/internal/service/customers"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *service.Service
	ledger          *audit.Ledger
}

func NewCustomerHandler(customerService *service.Service, ledger *audit.Ledger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		ledger:          ledger,
	}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	// Advisory duplicate check; a concurrent create can still slip past.
	if _, err := h.customerService.FindByPhone(c.Request.Context(), req.Phone); err == nil {
		response.Error(c, http.StatusConflict, "a customer with this phone already exists", nil)
		return
	} else if !errors.Is(err, xerrors.ErrNotFound) {
		response.FromError(c, err)
		return
	}

	created, err := h.customerService.Create(c.Request.Context(), act, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "customer created", created)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	detail, err := h.customerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "customer retrieved", detail)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "customers retrieved", customers)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req customer.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	updated, err := h.customerService.Update(c.Request.Context(), act, c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "customer updated", updated)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	act, _ := actor.FromContext(c)

	if err := h.customerService.Delete(c.Request.Context(), act, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "customer and all cases deleted", nil)
}

// GetCustomerHistory returns the customer's ledger entries newest-first.
func (h *CustomerHandler) GetCustomerHistory(c *gin.Context) {
	entries, err := h.ledger.ForCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "history retrieved", entries)
}
