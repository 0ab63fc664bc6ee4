package contracts

import (
	domainLead "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
)

type LeadCreateRequest struct {
	Name       string `json:"name" binding:"omitempty,max=150"`
	Source     string `json:"source" binding:"required,max=100"`
	Status     string `json:"status" binding:"omitempty,oneof=new qualified converted lost"`
	CompanyTag string `json:"companyTag" binding:"omitempty,max=50"`
	Date       string `json:"date" binding:"required"`
}

type LeadStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=new qualified converted lost"`
}

type LeadResponse struct {
	Lead *domainLead.Lead `json:"lead"`
}

type LeadListResponse struct {
	Leads []*domainLead.Lead `json:"leads"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
}

type LeadConversionResponse struct {
	From    string                        `json:"from"`
	To      string                        `json:"to"`
	Sources []domainLead.SourceConversion `json:"sources"`
}
