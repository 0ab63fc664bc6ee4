package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/contracts"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

func (h *Handler) CreateEmployee(c *gin.Context) {
	var body contracts.EmployeeCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, body.CompanyTag, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &payroll.Employee{
		OwnerId:      ownerID,
		Name:         body.Name,
		Position:     body.Position,
		CompanyTag:   companyTag,
		BaseSalary:   pkg.ParseAmount(body.BaseSalary),
		BonusPercent: pkg.ParseAmount(body.BonusPercent),
	}
	if err := h.PayrollService.Create(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.EmployeeResponse{Employee: entity})
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	var body contracts.EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	employeeID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, body.CompanyTag, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := &payroll.Employee{
		Id:           employeeID,
		OwnerId:      ownerID,
		Name:         body.Name,
		Position:     body.Position,
		CompanyTag:   companyTag,
		BaseSalary:   pkg.ParseAmount(body.BaseSalary),
		BonusPercent: pkg.ParseAmount(body.BonusPercent),
	}
	if err := h.PayrollService.Update(ctx, entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EmployeeResponse{Employee: entity})
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	employeeID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.PayrollService.Delete(ctx, employeeID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Employee deleted"})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	companyTag, err := h.CompanyService.ResolveTag(ctx, c.Query("company"), ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)
	employees, total, err := h.PayrollService.List(ctx, ownerID, companyTag, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EmployeeListResponse{
		Employees: employees,
		Page:      pagination.Page,
		Limit:     pagination.Limit,
		Total:     total,
	})
}

func (h *Handler) ComputePayroll(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if y := c.Query("year"); y != "" {
		parsed, err := pkg.ParseInt(y)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("year", "expected a number"))
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := pkg.ParseInt(m)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "expected 1-12"))
			return
		}
		month = parsed
	}

	ctx := c.Request.Context()
	summary, err := h.PayrollService.ComputePayroll(ctx, ownerID, year, time.Month(month))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PayrollResponse{Payroll: summary})
}
