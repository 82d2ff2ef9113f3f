package model

type AdminUser struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	FullName string `json:"fullName"`
	Password string `gorm:"not null" json:"-"` // hash bcrypt, jamais exposé
	Role     string `gorm:"not null;default:'user'" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
}

type AdminUsers []AdminUser

type CreateUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
	IsActive *bool  `json:"isActive"`
}

type UpdateUserInput struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool   `json:"isActive"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}

type FilterUser struct {
	Pagination
	SearchKey string  `json:"searchKey" query:"searchKey"`
	Role      *string `json:"role" query:"role"`
	IsActive  *bool   `json:"isActive" query:"isActive"`
}
