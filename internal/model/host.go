package model

import (
	"time"

	"github.com/google/uuid"
)

type Host struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RequestCodeRequest 寄送登入驗證碼
type RequestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Next  string `json:"next"`
}

// VerifyCodeRequest 驗證登入驗證碼
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
	Next  string `json:"next"`
}

// LoginView 登入頁所需資料
type LoginView struct {
	Next    string `json:"next"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
