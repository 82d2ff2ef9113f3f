package helper

import (
	"testing"
	"time"

	"nzoo_immo/constants"
	"nzoo_immo/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"même jour", date(2025, 1, 15), date(2025, 1, 15), 1},
		{"trois jours inclusifs", date(2025, 1, 15), date(2025, 1, 17), 3},
		{"mois complet", date(2025, 1, 1), date(2025, 1, 31), 31},
		{"à cheval sur deux mois", date(2025, 1, 25), date(2025, 2, 5), 12},
		{"année bissextile", date(2024, 2, 28), date(2024, 3, 1), 3},
	}

	for _, tt := range tests {
		got, err := CountDays(tt.start, tt.end)
		if err != nil {
			t.Errorf("%s: erreur inattendue: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: CountDays = %d, attendu %d", tt.name, got, tt.want)
		}
	}
}

func TestCountDaysEndBeforeStart(t *testing.T) {
	if _, err := CountDays(date(2025, 1, 17), date(2025, 1, 15)); err != ErrEndBeforeStart {
		t.Errorf("attendu ErrEndBeforeStart, obtenu %v", err)
	}
}

func TestCalculateTotal(t *testing.T) {
	coworking := PriceTable{
		Daily:   utils.Ptr(15.0),
		Monthly: utils.Ptr(300.0),
		Yearly:  utils.Ptr(3000.0),
	}
	salleReunion := PriceTable{Hourly: utils.Ptr(25.0)}
	domiciliation := PriceTable{Monthly: utils.Ptr(300.0), Yearly: utils.Ptr(3200.0)}

	tests := []struct {
		name         string
		spaceType    string
		start, end   time.Time
		subscription string
		prices       PriceTable
		want         float64
	}{
		{
			"coworking journalier 3 jours",
			constants.SPACE_COWORKING,
			date(2025, 1, 15), date(2025, 1, 17),
			constants.SUBSCRIPTION_DAILY, coworking, 45,
		},
		{
			"coworking journalier un seul jour",
			constants.SPACE_COWORKING,
			date(2025, 1, 15), date(2025, 1, 15),
			constants.SUBSCRIPTION_DAILY, coworking, 15,
		},
		{
			"coworking mensuel 30 jours pile",
			constants.SPACE_COWORKING,
			date(2025, 1, 1), date(2025, 1, 30),
			constants.SUBSCRIPTION_MONTHLY, coworking, 300,
		},
		{
			"coworking mensuel 31 jours arrondi à 2 mois",
			constants.SPACE_COWORKING,
			date(2025, 1, 1), date(2025, 1, 31),
			constants.SUBSCRIPTION_MONTHLY, coworking, 600,
		},
		{
			"coworking annuel 400 jours arrondi à 2 ans",
			constants.SPACE_COWORKING,
			date(2025, 1, 1), date(2026, 2, 4),
			constants.SUBSCRIPTION_YEARLY, coworking, 6000,
		},
		{
			"salle de réunion horaire 8h par jour",
			constants.SPACE_SALLE_REUNION,
			date(2025, 3, 10), date(2025, 3, 11),
			constants.SUBSCRIPTION_HOURLY, salleReunion, 400,
		},
		{
			"domiciliation un mois",
			constants.SPACE_DOMICILIATION,
			date(2025, 1, 1), date(2025, 1, 30),
			constants.SUBSCRIPTION_MONTHLY, domiciliation, 300,
		},
		{
			"domiciliation 45 jours arrondi à 2 mois",
			constants.SPACE_DOMICILIATION,
			date(2025, 1, 1), date(2025, 2, 14),
			constants.SUBSCRIPTION_MONTHLY, domiciliation, 600,
		},
		{
			"domiciliation ignore l'abonnement annuel",
			constants.SPACE_DOMICILIATION,
			date(2025, 1, 1), date(2025, 1, 30),
			constants.SUBSCRIPTION_YEARLY, domiciliation, 300,
		},
		{
			"bureau privé en daily rebasculé en mensuel",
			constants.SPACE_BUREAU_PRIVE,
			date(2025, 3, 1), date(2025, 3, 30),
			constants.SUBSCRIPTION_DAILY,
			PriceTable{Monthly: utils.Ptr(500.0), Yearly: utils.Ptr(5500.0)}, 500,
		},
		{
			"domiciliation en daily rebasculée en mensuel",
			constants.SPACE_DOMICILIATION,
			date(2025, 3, 1), date(2025, 3, 30),
			constants.SUBSCRIPTION_DAILY, domiciliation, 300,
		},
	}

	for _, tt := range tests {
		got, err := CalculateTotal(tt.spaceType, tt.start, tt.end, tt.subscription, tt.prices)
		if err != nil {
			t.Errorf("%s: erreur inattendue: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: total = %v, attendu %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeSubscription(t *testing.T) {
	tests := []struct {
		spaceType    string
		subscription string
		want         string
	}{
		{constants.SPACE_COWORKING, constants.SUBSCRIPTION_DAILY, constants.SUBSCRIPTION_DAILY},
		{constants.SPACE_BUREAU_PRIVE, constants.SUBSCRIPTION_DAILY, constants.SUBSCRIPTION_MONTHLY},
		{constants.SPACE_DOMICILIATION, constants.SUBSCRIPTION_DAILY, constants.SUBSCRIPTION_MONTHLY},
		{constants.SPACE_SALLE_REUNION, constants.SUBSCRIPTION_DAILY, constants.SUBSCRIPTION_MONTHLY},
		{constants.SPACE_BUREAU_PRIVE, constants.SUBSCRIPTION_YEARLY, constants.SUBSCRIPTION_YEARLY},
		{constants.SPACE_SALLE_REUNION, constants.SUBSCRIPTION_HOURLY, constants.SUBSCRIPTION_HOURLY},
	}

	for _, tt := range tests {
		if got := NormalizeSubscription(tt.spaceType, tt.subscription); got != tt.want {
			t.Errorf("NormalizeSubscription(%q, %q) = %q, attendu %q", tt.spaceType, tt.subscription, got, tt.want)
		}
	}
}

// Un tarif absent pour l'abonnement choisi est une erreur, jamais $0.
func TestCalculateTotalMissingPrice(t *testing.T) {
	tests := []struct {
		name         string
		spaceType    string
		subscription string
		prices       PriceTable
	}{
		{
			"salle de réunion en mensuel sans tarif mensuel",
			constants.SPACE_SALLE_REUNION,
			constants.SUBSCRIPTION_MONTHLY,
			PriceTable{Hourly: utils.Ptr(25.0)},
		},
		{
			"salle de réunion sans tarif horaire",
			constants.SPACE_SALLE_REUNION,
			constants.SUBSCRIPTION_HOURLY,
			PriceTable{Monthly: utils.Ptr(300.0)},
		},
		{
			"bureau privé sans tarif annuel",
			constants.SPACE_BUREAU_PRIVE,
			constants.SUBSCRIPTION_YEARLY,
			PriceTable{Monthly: utils.Ptr(500.0)},
		},
		{
			"domiciliation sans tarif mensuel",
			constants.SPACE_DOMICILIATION,
			constants.SUBSCRIPTION_MONTHLY,
			PriceTable{Yearly: utils.Ptr(3200.0)},
		},
		{
			"coworking sans tarif journalier",
			constants.SPACE_COWORKING,
			constants.SUBSCRIPTION_DAILY,
			PriceTable{Monthly: utils.Ptr(300.0)},
		},
	}

	for _, tt := range tests {
		total, err := CalculateTotal(tt.spaceType, date(2025, 3, 1), date(2025, 3, 30), tt.subscription, tt.prices)
		if err == nil {
			t.Errorf("%s: attendu une erreur, obtenu %v", tt.name, total)
		}
	}
}

func TestCalculateTotalUnknownSubscription(t *testing.T) {
	prices := PriceTable{Daily: utils.Ptr(15.0)}
	if _, err := CalculateTotal(constants.SPACE_COWORKING, date(2025, 1, 1), date(2025, 1, 2), "weekly", prices); err == nil {
		t.Error("un abonnement inconnu doit être rejeté, pas tarifé à 0")
	}
}

func TestCalculateTotalEndBeforeStart(t *testing.T) {
	prices := PriceTable{Daily: utils.Ptr(15.0)}
	if _, err := CalculateTotal(constants.SPACE_COWORKING, date(2025, 1, 17), date(2025, 1, 15), constants.SUBSCRIPTION_DAILY, prices); err == nil {
		t.Error("une fin avant le début doit être rejetée")
	}
}

func TestExpandReservationDates(t *testing.T) {
	var zero time.Time

	tests := []struct {
		name      string
		spaceType string
		start     time.Time
		end       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			"coworking date seule reste une journée",
			constants.SPACE_COWORKING,
			date(2025, 1, 15), zero,
			date(2025, 1, 15), date(2025, 1, 15),
		},
		{
			"coworking plage conservée telle quelle",
			constants.SPACE_COWORKING,
			date(2025, 1, 15), date(2025, 1, 20),
			date(2025, 1, 15), date(2025, 1, 20),
		},
		{
			"bureau privé date seule étendue à un mois",
			constants.SPACE_BUREAU_PRIVE,
			date(2025, 1, 15), zero,
			date(2025, 1, 15), date(2025, 2, 14),
		},
		{
			"fin de mois bornée au dernier jour de février",
			constants.SPACE_BUREAU_PRIVE,
			date(2025, 1, 31), zero,
			date(2025, 1, 31), date(2025, 2, 27),
		},
		{
			"fin de mois bornée en année bissextile",
			constants.SPACE_DOMICILIATION,
			date(2024, 1, 31), zero,
			date(2024, 1, 31), date(2024, 2, 28),
		},
		{
			"plage explicite jamais réécrite",
			constants.SPACE_DOMICILIATION,
			date(2025, 1, 31), date(2025, 3, 15),
			date(2025, 1, 31), date(2025, 3, 15),
		},
	}

	for _, tt := range tests {
		gotStart, gotEnd := ExpandReservationDates(tt.spaceType, tt.start, tt.end)
		if !gotStart.Equal(tt.wantStart) || !gotEnd.Equal(tt.wantEnd) {
			t.Errorf("%s: [%s, %s], attendu [%s, %s]", tt.name,
				gotStart.Format("2006-01-02"), gotEnd.Format("2006-01-02"),
				tt.wantStart.Format("2006-01-02"), tt.wantEnd.Format("2006-01-02"))
		}
	}
}
