package model

import (
	"nzoo_immo/utils"
)

type Reservation struct {
	DTO
	PublicCode string `gorm:"unique;size:20" json:"publicCode"` // Référence publique (ex: RES-XXXXXXXX)

	// Client
	FullName string  `gorm:"not null" json:"fullName"`
	Email    string  `gorm:"not null" json:"email"`
	Phone    string  `gorm:"not null" json:"phone"`
	Company  *string `json:"company,omitempty"`
	Activity string  `json:"activity"`
	Address  *string `json:"address,omitempty"`

	// Réservation
	SpaceType        string           `gorm:"not null;index" json:"spaceType"`
	SpaceId          *uint            `json:"spaceId,omitempty"`
	Space            *Space           `gorm:"foreignKey:SpaceId" json:"space,omitempty"`
	StartDate        utils.CustomDate `gorm:"type:date;not null" json:"startDate"`
	EndDate          utils.CustomDate `gorm:"type:date;not null" json:"endDate"`
	Occupants        int              `gorm:"not null" json:"occupants"`
	SubscriptionType string           `gorm:"not null" json:"subscriptionType"`

	// Commercial
	Amount        float64 `gorm:"not null" json:"amount"` // USD
	PaymentMethod string  `gorm:"not null" json:"paymentMethod"`
	PaymentStatus string  `gorm:"not null;default:'pending'" json:"paymentStatus"`
	TransactionId string  `gorm:"size:64" json:"transactionId"`

	// Cycle de vie
	Status     string  `gorm:"not null;default:'pending';index" json:"status"`
	Notes      *string `json:"notes,omitempty"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

type Reservations []Reservation

type CreateReservationInput struct {
	FullName         string  `json:"fullName" validate:"required,min=2,max=100"`
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required,min=6,max=30"`
	Company          *string `json:"company" validate:"omitempty,max=100"`
	Activity         string  `json:"activity" validate:"required,max=200"`
	Address          *string `json:"address" validate:"omitempty,max=200"`
	SpaceType        string  `json:"spaceType" validate:"required,oneof=coworking bureau-prive salle-reunion domiciliation"`
	StartDate        string  `json:"startDate" validate:"required"`
	EndDate          string  `json:"endDate" validate:"omitempty"`
	Occupants        int     `json:"occupants" validate:"required,gte=1"`
	SubscriptionType string  `json:"subscriptionType" validate:"required,oneof=hourly daily monthly yearly"`
	Amount           float64 `json:"amount" validate:"omitempty,gte=0"` // recalculé côté serveur
	PaymentMethod    string  `json:"paymentMethod" validate:"required,oneof=orange_money airtel_money visa cash"`
	TransactionId    string  `json:"transactionId" validate:"omitempty,max=64"`
	Notes            *string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateReservationInput porte les champs modifiables; le filtrage par rôle
// se fait dans handler via helper.FilterEditableFields.
type UpdateReservationInput struct {
	FullName         *string  `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Phone            *string  `json:"phone" validate:"omitempty,min=6,max=30"`
	Company          *string  `json:"company" validate:"omitempty,max=100"`
	Activity         *string  `json:"activity" validate:"omitempty,max=200"`
	Address          *string  `json:"address" validate:"omitempty,max=200"`
	SpaceType        *string  `json:"spaceType" validate:"omitempty,oneof=coworking bureau-prive salle-reunion domiciliation"`
	StartDate        *string  `json:"startDate" validate:"omitempty"`
	EndDate          *string  `json:"endDate" validate:"omitempty"`
	Occupants        *int     `json:"occupants" validate:"omitempty,gte=1"`
	SubscriptionType *string  `json:"subscriptionType" validate:"omitempty,oneof=hourly daily monthly yearly"`
	Amount           *float64 `json:"amount" validate:"omitempty,gte=0"`
	PaymentMethod    *string  `json:"paymentMethod" validate:"omitempty,oneof=orange_money airtel_money visa cash"`
	PaymentStatus    *string  `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed"`
	Status           *string  `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes            *string  `json:"notes" validate:"omitempty,max=1000"`
	AdminNotes       *string  `json:"adminNotes" validate:"omitempty,max=1000"`
}

type UpdateReservationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type FilterReservation struct {
	Pagination
	Status        *string `json:"status" query:"status"`
	SpaceType     *string `json:"spaceType" query:"spaceType"`
	PaymentMethod *string `json:"paymentMethod" query:"paymentMethod"`
	PaymentStatus *string `json:"paymentStatus" query:"paymentStatus"`
	StartDate     *string `json:"startDate" query:"startDate"` // YYYY-MM-DD
	EndDate       *string `json:"endDate" query:"endDate"`
	SearchKey     string  `json:"searchKey" query:"searchKey"`
}

// PublicReservation est la vue sans champs sensibles (jamais d'adminNotes).
type PublicReservation struct {
	PublicCode       string           `json:"publicCode"`
	FullName         string           `json:"fullName"`
	SpaceType        string           `json:"spaceType"`
	StartDate        utils.CustomDate `json:"startDate"`
	EndDate          utils.CustomDate `json:"endDate"`
	Occupants        int              `json:"occupants"`
	SubscriptionType string           `json:"subscriptionType"`
	Amount           float64          `json:"amount"`
	PaymentMethod    string           `json:"paymentMethod"`
	PaymentStatus    string           `json:"paymentStatus"`
	Status           string           `json:"status"`
}

func (r *Reservation) Public() PublicReservation {
	return PublicReservation{
		PublicCode:       r.PublicCode,
		FullName:         r.FullName,
		SpaceType:        r.SpaceType,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Occupants:        r.Occupants,
		SubscriptionType: r.SubscriptionType,
		Amount:           r.Amount,
		PaymentMethod:    r.PaymentMethod,
		PaymentStatus:    r.PaymentStatus,
		Status:           r.Status,
	}
}
