package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nzoo_immo/config"

	"github.com/redis/go-redis/v9"
)

const reservationChannel = "reservations:events"

var redisClient *redis.Client

// RedisClient initialise le client à la demande (adresse via REDIS_ADDR).
func RedisClient() *redis.Client {
	if redisClient == nil {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	}
	return redisClient
}

type ReservationEvent struct {
	PublicCode string    `json:"publicCode"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

// PublishReservationEvent diffuse un changement d'état aux tableaux de bord
// connectés. Échec non fatal: la réservation reste la source de vérité.
func PublishReservationEvent(publicCode, status string) {
	payload, err := json.Marshal(ReservationEvent{
		PublicCode: publicCode,
		Status:     status,
		At:         time.Now(),
	})
	if err != nil {
		return
	}

	if err := RedisClient().Publish(context.Background(), reservationChannel, payload).Err(); err != nil {
		log.Printf("Erreur publication événement réservation %s: %v", publicCode, err)
	}
}

// SubscribeReservationEvents ouvre l'abonnement au canal des réservations.
func SubscribeReservationEvents(ctx context.Context) *redis.PubSub {
	return RedisClient().Subscribe(ctx, reservationChannel)
}
