package contracts

import (
	domainPayroll "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
)

type EmployeeCreateRequest struct {
	Name         string `json:"name" binding:"required,max=150"`
	Position     string `json:"position" binding:"omitempty,max=100"`
	CompanyTag   string `json:"companyTag" binding:"omitempty,max=50"`
	BaseSalary   string `json:"baseSalary" binding:"required"`
	BonusPercent string `json:"bonusPercent" binding:"omitempty"`
}

type EmployeeUpdateRequest struct {
	Name         string `json:"name" binding:"required,max=150"`
	Position     string `json:"position" binding:"omitempty,max=100"`
	CompanyTag   string `json:"companyTag" binding:"omitempty,max=50"`
	BaseSalary   string `json:"baseSalary" binding:"required"`
	BonusPercent string `json:"bonusPercent" binding:"omitempty"`
}

type EmployeeResponse struct {
	Employee *domainPayroll.Employee `json:"employee"`
}

type EmployeeListResponse struct {
	Employees []*domainPayroll.Employee `json:"employees"`
	Page      int                       `json:"page"`
	Limit     int                       `json:"limit"`
	Total     int64                     `json:"total"`
}

type PayrollResponse struct {
	Payroll *domainPayroll.PayrollSummary `json:"payroll"`
}
