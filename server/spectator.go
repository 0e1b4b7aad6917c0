package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type spectator struct {
	conn *websocket.Conn
	done chan struct{}
}

func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("Failed to upgrade connection to websocket")
		return
	}

	sp := &spectator{conn: conn, done: make(chan struct{})}
	go sp.receiveMessage()
	go sp.sendSnapshots(s.src)
}

// receiveMessage discards whatever the spectator sends and notices when the
// connection goes away.
func (sp *spectator) receiveMessage() {
	defer close(sp.done)
	for {
		if _, _, err := sp.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (sp *spectator) sendSnapshots(src Source) {
	ticker := time.NewTicker(pushInterval)
	defer func() {
		ticker.Stop()
		sp.conn.Close()
	}()

	for {
		sp.conn.SetWriteDeadline(time.Now().Add(time.Second))
		if err := sp.conn.WriteJSON(src.Snapshot()); err != nil {
			log.WithError(err).Debug("Spectator disconnected")
			return
		}

		select {
		case <-ticker.C:
		case <-sp.done:
			return
		}
	}
}
