package model

import "github.com/lib/pq"

type Space struct {
	DTO
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"unique;size:120" json:"slug"`
	Type        string         `gorm:"not null;index" json:"type"`
	Description string         `json:"description"`
	Features    pq.StringArray `gorm:"type:text[]" json:"features"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`

	HourlyPrice  *float64 `json:"hourlyPrice,omitempty"`
	DailyPrice   *float64 `json:"dailyPrice,omitempty"`
	MonthlyPrice *float64 `json:"monthlyPrice,omitempty"`
	YearlyPrice  *float64 `json:"yearlyPrice,omitempty"`

	MaxOccupants       int    `gorm:"not null;default:1" json:"maxOccupants"`
	IsActive           bool   `gorm:"not null;default:true" json:"isActive"`
	AvailabilityStatus string `gorm:"not null;default:'available'" json:"availabilityStatus"`
	DisplayOrder       int    `gorm:"not null;default:0" json:"displayOrder"`
	AdminNotes         *string `json:"adminNotes,omitempty"`
}

type Spaces []Space

type CreateSpaceInput struct {
	Name               string   `json:"name" validate:"required,min=2,max=100"`
	Type               string   `json:"type" validate:"required,oneof=coworking bureau-prive salle-reunion domiciliation"`
	Description        string   `json:"description" validate:"omitempty,max=1000"`
	Features           []string `json:"features" validate:"omitempty,dive,max=100"`
	Images             []string `json:"images" validate:"omitempty,dive,max=300"`
	HourlyPrice        *float64 `json:"hourlyPrice" validate:"omitempty,gte=0"`
	DailyPrice         *float64 `json:"dailyPrice" validate:"omitempty,gte=0"`
	MonthlyPrice       *float64 `json:"monthlyPrice" validate:"omitempty,gte=0"`
	YearlyPrice        *float64 `json:"yearlyPrice" validate:"omitempty,gte=0"`
	MaxOccupants       int      `json:"maxOccupants" validate:"required,gte=1"`
	IsActive           *bool    `json:"isActive"`
	AvailabilityStatus string   `json:"availabilityStatus" validate:"omitempty,oneof=available maintenance reserved unavailable"`
	DisplayOrder       int      `json:"displayOrder" validate:"omitempty,gte=0"`
	AdminNotes         *string  `json:"adminNotes" validate:"omitempty,max=1000"`
}

type UpdateSpaceInput struct {
	Name               *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description        *string  `json:"description" validate:"omitempty,max=1000"`
	Features           []string `json:"features" validate:"omitempty,dive,max=100"`
	Images             []string `json:"images" validate:"omitempty,dive,max=300"`
	HourlyPrice        *float64 `json:"hourlyPrice" validate:"omitempty,gte=0"`
	DailyPrice         *float64 `json:"dailyPrice" validate:"omitempty,gte=0"`
	MonthlyPrice       *float64 `json:"monthlyPrice" validate:"omitempty,gte=0"`
	YearlyPrice        *float64 `json:"yearlyPrice" validate:"omitempty,gte=0"`
	MaxOccupants       *int     `json:"maxOccupants" validate:"omitempty,gte=1"`
	IsActive           *bool    `json:"isActive"`
	AvailabilityStatus *string  `json:"availabilityStatus" validate:"omitempty,oneof=available maintenance reserved unavailable"`
	DisplayOrder       *int     `json:"displayOrder" validate:"omitempty,gte=0"`
	AdminNotes         *string  `json:"adminNotes" validate:"omitempty,max=1000"`
}

type FilterSpace struct {
	Pagination
	Type               *string `json:"type" query:"type"`
	IsActive           *bool   `json:"isActive" query:"isActive"`
	AvailabilityStatus *string `json:"availabilityStatus" query:"availabilityStatus"`
}
