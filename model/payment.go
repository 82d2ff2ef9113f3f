package model

type CinetPayConfig struct {
	SiteId     string
	ApiKey     string
	HashSecret string
	BaseURL    string
	ReturnURL  string
	NotifyURL  string
}

type PaymentRequest struct {
	Amount        float64
	Currency      string
	Method        string // orange_money, airtel_money, visa
	TxnRef        string
	Description   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type PaymentResponse struct {
	IsSuccess bool
	TxnRef    string
	Amount    float64
	Status    string
	Message   string
}

type CreatePaymentInput struct {
	ReservationCode string `json:"reservationCode" validate:"required"`
	Method          string `json:"method" validate:"required,oneof=orange_money airtel_money visa"`
}
