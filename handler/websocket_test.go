package handler

import (
	"errors"
	"testing"
)

type fakeConn struct {
	writes int
	closed bool
	fail   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if f.fail {
		return errors.New("connexion perdue")
	}
	f.writes++
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

// Chaque événement doit partir exactement une fois vers chaque client,
// quel que soit le nombre de connexions ouvertes.
func TestBroadcastReservationEventOncePerClient(t *testing.T) {
	a := &fakeConn{}
	b := &fakeConn{}

	wsMu.Lock()
	wsClients[a] = true
	wsClients[b] = true
	wsMu.Unlock()
	defer func() {
		wsMu.Lock()
		delete(wsClients, a)
		delete(wsClients, b)
		wsMu.Unlock()
	}()

	broadcastReservationEvent([]byte(`{"publicCode":"RES-AB12CD34","status":"confirmed"}`))
	broadcastReservationEvent([]byte(`{"publicCode":"RES-AB12CD34","status":"completed"}`))

	if a.writes != 2 || b.writes != 2 {
		t.Errorf("chaque client doit recevoir chaque événement une fois: a=%d, b=%d", a.writes, b.writes)
	}
}

func TestBroadcastReservationEventDropsDeadClient(t *testing.T) {
	dead := &fakeConn{fail: true}
	alive := &fakeConn{}

	wsMu.Lock()
	wsClients[dead] = true
	wsClients[alive] = true
	wsMu.Unlock()
	defer func() {
		wsMu.Lock()
		delete(wsClients, dead)
		delete(wsClients, alive)
		wsMu.Unlock()
	}()

	broadcastReservationEvent([]byte(`{"publicCode":"RES-AB12CD34","status":"cancelled"}`))

	if !dead.closed {
		t.Error("un client en échec d'écriture doit être fermé")
	}
	wsMu.Lock()
	_, stillThere := wsClients[dead]
	wsMu.Unlock()
	if stillThere {
		t.Error("un client en échec d'écriture doit être retiré de la liste")
	}
	if alive.writes != 1 {
		t.Errorf("les autres clients doivent continuer à recevoir: %d écriture(s)", alive.writes)
	}
}
