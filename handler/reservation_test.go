package handler

import (
	"errors"
	"strings"
	"testing"

	"nzoo_immo/constants"
	"nzoo_immo/model"
	"nzoo_immo/utils"
)

func sampleReservation() model.Reservation {
	start, _ := utils.ParseCustomDate("2025-03-01")
	end, _ := utils.ParseCustomDate("2025-03-30")
	return model.Reservation{
		PublicCode:       "RES-AB12CD34",
		FullName:         "Jean Mavungu",
		Email:            "jean@example.com",
		Phone:            "+243810000000",
		Activity:         "Conseil",
		SpaceType:        constants.SPACE_BUREAU_PRIVE,
		StartDate:        start,
		EndDate:          end,
		Occupants:        4,
		SubscriptionType: constants.SUBSCRIPTION_MONTHLY,
		Amount:           500,
		PaymentMethod:    constants.PAYMENT_ORANGE_MONEY,
		Status:           constants.RESERVATION_PENDING,
	}
}

// L'échec d'envoi ne doit jamais remonter: la réservation déjà persistée
// reste acquise, seul le drapeau emailSent passe à false.
func TestSendReservationConfirmationFailure(t *testing.T) {
	orig := sendConfirmationEmail
	defer func() { sendConfirmationEmail = orig }()

	sendConfirmationEmail = func(to string, data utils.ReservationConfirmationData) error {
		return errors.New("SMTP indisponible")
	}

	reservation := sampleReservation()
	if sent := sendReservationConfirmation(&reservation); sent {
		t.Error("un envoi en échec doit donner emailSent=false")
	}
}

func TestSendReservationConfirmationSuccess(t *testing.T) {
	orig := sendConfirmationEmail
	defer func() { sendConfirmationEmail = orig }()

	var got utils.ReservationConfirmationData
	var gotTo string
	sendConfirmationEmail = func(to string, data utils.ReservationConfirmationData) error {
		gotTo = to
		got = data
		return nil
	}

	reservation := sampleReservation()
	if sent := sendReservationConfirmation(&reservation); !sent {
		t.Fatal("un envoi réussi doit donner emailSent=true")
	}

	if gotTo != "jean@example.com" {
		t.Errorf("destinataire = %q", gotTo)
	}
	if got.ReservationCode != "RES-AB12CD34" {
		t.Errorf("référence = %q", got.ReservationCode)
	}
	if got.StartDate != "2025-03-01" || got.EndDate != "2025-03-30" {
		t.Errorf("période = %q -> %q", got.StartDate, got.EndDate)
	}
	if !strings.HasSuffix(got.DetailLink, "/reservations/RES-AB12CD34") {
		t.Errorf("lien de détail inattendu: %q", got.DetailLink)
	}
	if got.Company != "Non spécifiée" {
		t.Errorf("entreprise absente doit afficher un défaut, obtenu %q", got.Company)
	}
}
