package helper

import (
	"fmt"
	"log"
	"time"

	"nzoo_immo/constants"
	"nzoo_immo/database"
	"nzoo_immo/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitialStatus donne le statut de création: le paiement en espèces est réglé
// à l'arrivée donc confirmé d'office, tout le reste attend paiement ou revue.
func InitialStatus(paymentMethod string) string {
	if paymentMethod == constants.PAYMENT_CASH {
		return constants.RESERVATION_CONFIRMED
	}
	return constants.RESERVATION_PENDING
}

// CanTransition vérifie une transition de statut. Repasser au même statut est
// un no-op autorisé; cancelled et completed sont terminaux.
func CanTransition(from, to string) error {
	if from == to {
		return nil
	}

	switch from {
	case constants.RESERVATION_PENDING:
		if to == constants.RESERVATION_CONFIRMED || to == constants.RESERVATION_CANCELLED {
			return nil
		}
	case constants.RESERVATION_CONFIRMED:
		if to == constants.RESERVATION_COMPLETED || to == constants.RESERVATION_CANCELLED {
			return nil
		}
	case constants.RESERVATION_CANCELLED, constants.RESERVATION_COMPLETED:
		return fmt.Errorf("statut %q terminal, aucune transition possible", from)
	}

	return fmt.Errorf("transition de statut interdite: %q vers %q", from, to)
}

// StatusAfterExpiry décide du nouveau statut d'une réservation dont la date
// de fin est passée. ok=false si aucun changement n'est dû.
func StatusAfterExpiry(status string) (string, bool) {
	switch status {
	case constants.RESERVATION_CONFIRMED:
		return constants.RESERVATION_COMPLETED, true
	case constants.RESERVATION_PENDING:
		return constants.RESERVATION_CANCELLED, true
	default:
		return status, false
	}
}

// SweepExpiredReservations fait avancer les réservations dont la date de fin
// est strictement avant today (comparaison en jours calendaires). Chaque
// enregistrement est mis à jour isolément: un échec n'interrompt pas le
// balayage des suivants. Retourne le nombre de réservations mises à jour.
func SweepExpiredReservations(db *gorm.DB, today time.Time) (int, error) {
	cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var expired []model.Reservation
	if err := db.
		Where("end_date < ? AND status IN ?", cutoff.Format("2006-01-02"),
			[]string{constants.RESERVATION_PENDING, constants.RESERVATION_CONFIRMED}).
		Find(&expired).Error; err != nil {
		return 0, err
	}

	updated := 0
	for _, r := range expired {
		next, ok := StatusAfterExpiry(r.Status)
		if !ok {
			continue
		}
		if err := db.Model(&model.Reservation{}).
			Where("id = ?", r.ID).
			Update("status", next).Error; err != nil {
			log.Printf("Balayage: échec mise à jour réservation %s: %v", r.PublicCode, err)
			continue
		}
		PublishReservationEvent(r.PublicCode, next)
		updated++
	}

	return updated, nil
}

var sweepScheduler *cron.Cron

func runReservationSweep() {
	count, err := SweepExpiredReservations(database.DB, time.Now())
	if err != nil {
		log.Printf("Erreur balayage des réservations expirées: %v", err)
		return
	}
	if count > 0 {
		log.Printf("Balayage: %d réservation(s) mise(s) à jour", count)
	}
}

// StartReservationSweeper lance le balayage d'expiration toutes les 30 minutes.
func StartReservationSweeper() {
	sweepScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sweepScheduler.AddFunc("*/30 * * * *", runReservationSweep)
	if err != nil {
		log.Printf("Erreur initialisation du scheduler de balayage: %v", err)
		return
	}

	sweepScheduler.Start()
	log.Println("Scheduler de balayage des réservations démarré (toutes les 30 min)")
}

func StopReservationSweeper() {
	if sweepScheduler != nil {
		sweepScheduler.Stop()
		log.Println("Scheduler de balayage des réservations arrêté")
	}
}

var dailyScheduler gocron.Scheduler

// DailyReservationReport journalise chaque matin l'état du jour: arrivées,
// départs et réservations toujours en attente.
func DailyReservationReport() {
	db := database.DB
	today := time.Now().In(kinshasaLocation()).Format("2006-01-02")

	var arrivals, departures, pending int64
	db.Model(&model.Reservation{}).
		Where("start_date = ? AND status = ?", today, constants.RESERVATION_CONFIRMED).
		Count(&arrivals)
	db.Model(&model.Reservation{}).
		Where("end_date = ? AND status = ?", today, constants.RESERVATION_CONFIRMED).
		Count(&departures)
	db.Model(&model.Reservation{}).
		Where("status = ?", constants.RESERVATION_PENDING).
		Count(&pending)

	log.Printf("[CRON] Rapport du %s: %d arrivée(s), %d départ(s), %d en attente", today, arrivals, departures, pending)
}

func kinshasaLocation() *time.Location {
	// WAT = UTC+1, fuseau de Kinshasa
	return time.FixedZone("WAT", 1*3600)
}

// StartDailyReportScheduler lance le rapport quotidien à 00:05 heure de Kinshasa.
func StartDailyReportScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(kinshasaLocation()),
	)
	if err != nil {
		log.Fatal(err)
	}

	dailyScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(DailyReservationReport),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Scheduler du rapport quotidien démarré (00:05 WAT)")
}

func StopDailyReportScheduler() {
	if dailyScheduler != nil {
		if err := dailyScheduler.Shutdown(); err != nil {
			log.Printf("Erreur arrêt du scheduler quotidien: %v", err)
		}
	}
}
