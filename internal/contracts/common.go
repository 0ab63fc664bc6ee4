package contracts

import (
	domainUser "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/user"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
}

type ProfileResponse struct {
	User *domainUser.User `json:"user"`
}
