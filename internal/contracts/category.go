package contracts

import (
	domainCategory "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/category"
)

type CategoryCreateRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Kind   string `json:"kind" binding:"required,oneof=income expense"`
	Bucket string `json:"bucket" binding:"omitempty,oneof=withdrawals money_in_project"`
}

type CategoryUpdateRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Kind   string `json:"kind" binding:"required,oneof=income expense"`
	Bucket string `json:"bucket" binding:"omitempty,oneof=withdrawals money_in_project"`
}

type CategoryResponse struct {
	Category *domainCategory.Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []*domainCategory.Category `json:"categories"`
	Total      int                        `json:"total"`
}
