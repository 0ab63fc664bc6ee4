package contracts

import (
	domainTransaction "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
)

// Amounts travel as strings so the backend controls the decimal parsing;
// malformed or negative input coerces to zero instead of failing the import.
type TransactionCreateRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=income expense"`
	Category    string `json:"category" binding:"required,max=100"`
	Subcategory string `json:"subcategory" binding:"omitempty,max=100"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	CompanyTag  string `json:"companyTag" binding:"omitempty,max=50"`
	Comment     string `json:"comment" binding:"omitempty,max=255"`
}

type TransactionUpdateRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=income expense"`
	Category    string `json:"category" binding:"required,max=100"`
	Subcategory string `json:"subcategory" binding:"omitempty,max=100"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	CompanyTag  string `json:"companyTag" binding:"omitempty,max=50"`
	Comment     string `json:"comment" binding:"omitempty,max=255"`
}

type TransactionResponse struct {
	Transaction *domainTransaction.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []*domainTransaction.Transaction `json:"transactions"`
	Page         int                              `json:"page"`
	Limit        int                              `json:"limit"`
	Total        int64                            `json:"total"`
}
