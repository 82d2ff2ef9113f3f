package handler

import (
	"context"
	"sync"

	"nzoo_immo/helper"

	"github.com/gofiber/contrib/websocket"
)

// wsWriter est la surface minimale d'une connexion côté diffusion.
type wsWriter interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	wsClients = make(map[wsWriter]bool)
	wsMu      sync.Mutex
	wsPump    sync.Once
)

// startReservationPump ouvre un unique abonnement redis partagé par toutes
// les connexions: chaque événement part une seule fois vers chaque client.
func startReservationPump() {
	wsPump.Do(func() {
		go func() {
			pubsub := helper.SubscribeReservationEvents(context.Background())
			defer pubsub.Close()

			for msg := range pubsub.Channel() {
				broadcastReservationEvent([]byte(msg.Payload))
			}
		}()
	})
}

func broadcastReservationEvent(payload []byte) {
	wsMu.Lock()
	defer wsMu.Unlock()

	for conn := range wsClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}

// ReservationFeed pousse les événements de réservation (création, changement
// de statut, balayage) aux tableaux de bord admin connectés.
func ReservationFeed(c *websocket.Conn) {
	startReservationPump()

	wsMu.Lock()
	wsClients[c] = true
	wsMu.Unlock()

	defer func() {
		wsMu.Lock()
		delete(wsClients, c)
		wsMu.Unlock()
		c.Close()
	}()

	// La connexion reste ouverte jusqu'à fermeture côté client.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
