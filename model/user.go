package model

import "time"

type User struct {
	DTO
	FullName       string `gorm:"not null" json:"fullName"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber    string `gorm:"size:20" json:"phoneNumber"`
	Password       string `gorm:"not null" json:"-"`
	Role           string `gorm:"size:10;not null;default:'user'" json:"role"`
	AvatarUrl      string `json:"avatarUrl"`
	AvatarPublicId string `json:"-"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"index" json:"userId"`
	Token     string    `gorm:"size:64;uniqueIndex" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterInput struct {
	FullName    string `json:"fullName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,min=7,max=20"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
