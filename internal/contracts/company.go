package contracts

import (
	domainCompany "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/company"
)

type CompanyCreateRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Tag   string `json:"tag" binding:"required,max=50"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type CompanyUpdateRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Tag   string `json:"tag" binding:"required,max=50"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

type CompanyResponse struct {
	Company *domainCompany.Company `json:"company"`
}

type CompanyListResponse struct {
	Companies []*domainCompany.Company `json:"companies"`
	Total     int                      `json:"total"`
}
