package contracts

import (
	domainSale "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
)

type SaleCreateRequest struct {
	ClientName       string `json:"clientName" binding:"required,max=150"`
	ManagerId        string `json:"managerId" binding:"omitempty,len=26"`
	CompanyTag       string `json:"companyTag" binding:"omitempty,max=50"`
	TotalAmount      string `json:"totalAmount" binding:"required"`
	Date             string `json:"date" binding:"required"`
	InstallmentCount int    `json:"installmentCount" binding:"required,min=1,max=60"`
	Comment          string `json:"comment" binding:"omitempty,max=255"`
}

type SalePaymentRequest struct {
	InstallmentId string `json:"installmentId" binding:"required,len=26"`
	Amount        string `json:"amount" binding:"required"`
	PaidAt        string `json:"paidAt" binding:"omitempty"`
}

type SaleResponse struct {
	Sale *domainSale.Sale `json:"sale"`
}

type SaleListResponse struct {
	Sales []*domainSale.Sale `json:"sales"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
}

type SaleForecastResponse struct {
	Forecast []domainSale.ForecastBucket `json:"forecast"`
}
