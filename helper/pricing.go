package helper

import (
	"errors"
	"fmt"
	"math"
	"time"

	"nzoo_immo/constants"
	"nzoo_immo/model"
)

// Les heures facturables d'une salle de réunion par journée réservée.
const BillableHoursPerDay = 8

var ErrEndBeforeStart = errors.New("la date de fin précède la date de début")

// PriceTable regroupe les tarifs applicables d'un espace, quelle qu'en soit
// la source (catalogue statique ou ligne Space en base).
type PriceTable struct {
	Hourly  *float64
	Daily   *float64
	Monthly *float64
	Yearly  *float64
}

func PriceTableFromSpace(space *model.Space) PriceTable {
	return PriceTable{
		Hourly:  space.HourlyPrice,
		Daily:   space.DailyPrice,
		Monthly: space.MonthlyPrice,
		Yearly:  space.YearlyPrice,
	}
}

func PriceTableFromInfo(info *SpaceInfo) PriceTable {
	return PriceTable{
		Hourly:  info.HourlyPrice,
		Daily:   info.DailyPrice,
		Monthly: info.MonthlyPrice,
		Yearly:  info.YearlyPrice,
	}
}

// NormalizeSubscription ramène l'abonnement à un choix cohérent avec le type
// d'espace: seul le coworking se réserve à la journée, les autres types en
// "daily" sont rebasculés en mensuel.
func NormalizeSubscription(spaceType, subscriptionType string) string {
	if spaceType != constants.SPACE_COWORKING && subscriptionType == constants.SUBSCRIPTION_DAILY {
		return constants.SUBSCRIPTION_MONTHLY
	}
	return subscriptionType
}

// tierPrice refuse un tarif absent: un espace sans prix pour l'abonnement
// choisi ne doit jamais produire une réservation à $0.
func tierPrice(p *float64, label string) (float64, error) {
	if p == nil {
		return 0, fmt.Errorf("aucun tarif %s défini pour cet espace", label)
	}
	return *p, nil
}

// dateOnly ramène un instant à minuit UTC pour que l'arithmétique de jours
// soit purement calendaire (aucun effet DST/fuseau).
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CountDays compte les jours de l'intervalle fermé [start, end].
func CountDays(start, end time.Time) (int, error) {
	s := dateOnly(start)
	e := dateOnly(end)
	if e.Before(s) {
		return 0, ErrEndBeforeStart
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// CalculateTotal calcule le montant (USD) d'une réservation.
//
// Règles:
//   - domiciliation: mensuel × ceil(jours/30), quel que soit l'abonnement
//   - salle-reunion en abonnement horaire: horaire × 8h × jours
//   - sinon daily/monthly/yearly selon l'abonnement
//
// Un abonnement inconnu ou un tarif absent est une erreur de validation,
// jamais un montant à 0.
func CalculateTotal(spaceType string, start, end time.Time, subscriptionType string, prices PriceTable) (float64, error) {
	days, err := CountDays(start, end)
	if err != nil {
		return 0, err
	}

	subscriptionType = NormalizeSubscription(spaceType, subscriptionType)

	if spaceType == constants.SPACE_DOMICILIATION {
		monthly, err := tierPrice(prices.Monthly, "mensuel")
		if err != nil {
			return 0, err
		}
		return monthly * math.Ceil(float64(days)/30), nil
	}

	if spaceType == constants.SPACE_SALLE_REUNION && subscriptionType == constants.SUBSCRIPTION_HOURLY {
		hourly, err := tierPrice(prices.Hourly, "horaire")
		if err != nil {
			return 0, err
		}
		return hourly * BillableHoursPerDay * float64(days), nil
	}

	switch subscriptionType {
	case constants.SUBSCRIPTION_DAILY:
		daily, err := tierPrice(prices.Daily, "journalier")
		if err != nil {
			return 0, err
		}
		return daily * float64(days), nil
	case constants.SUBSCRIPTION_MONTHLY:
		monthly, err := tierPrice(prices.Monthly, "mensuel")
		if err != nil {
			return 0, err
		}
		return monthly * math.Ceil(float64(days)/30), nil
	case constants.SUBSCRIPTION_YEARLY:
		yearly, err := tierPrice(prices.Yearly, "annuel")
		if err != nil {
			return 0, err
		}
		return yearly * math.Ceil(float64(days)/365), nil
	default:
		return 0, fmt.Errorf("type d'abonnement non reconnu: %q", subscriptionType)
	}
}

// addMonthClamped ajoute un mois calendaire en bornant le jour au dernier
// jour du mois cible (31 janvier + 1 mois = 28/29 février, jamais un
// débordement vers mars).
func addMonthClamped(d time.Time) time.Time {
	year, month, day := d.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfNext := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastOfNext {
		day = lastOfNext
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, time.UTC)
}

// ExpandReservationDates normalise la sélection de dates.
//
// Le coworking est le seul type à durée libre: la plage soumise est gardée
// telle quelle (une date seule devient une réservation d'un jour). Pour les
// autres types, une date seule est étendue à une période d'un mois:
// fin = début + 1 mois (jour borné au dernier jour du mois cible) − 1 jour.
// Une plage complète soumise est conservée sans transformation.
func ExpandReservationDates(spaceType string, start, end time.Time) (time.Time, time.Time) {
	s := dateOnly(start)

	if !end.IsZero() {
		return s, dateOnly(end)
	}

	if spaceType == constants.SPACE_COWORKING {
		return s, s
	}

	return s, addMonthClamped(s).AddDate(0, 0, -1)
}
