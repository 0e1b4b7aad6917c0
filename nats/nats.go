package nats

import (
	"errors"

	"runner-game/circuitbreaker"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

var ErrNotConnected = errors.New("nats not connected")

var conn *nats.Conn

func Connect(natsUrl string) {
	if natsUrl == "" {
		// No NATS server configured, do nothing.
		log.Info("No nats server configured")
		return
	}

	c, err := nats.Connect(natsUrl,
		nats.Name("runner-game"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("Disconnected from nats")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("Reconnected to nats at ", c.ConnectedUrl())
		}),
	)
	if err != nil {
		log.WithError(err).Error("Failed to connect to nats")
		return
	}

	log.Info("Connected to nats at ", natsUrl)
	conn = c
}

func Connected() bool {
	return conn != nil
}

func Publish(subject string, data []byte) error {
	if conn == nil {
		return ErrNotConnected
	}

	publish := func() (interface{}, error) {
		return nil, conn.Publish(subject, data)
	}

	var err error
	if circuitbreaker.NatsBreaker != nil {
		_, err = circuitbreaker.NatsBreaker.Execute(publish)
	} else {
		_, err = publish()
	}
	if err != nil {
		log.WithError(err).WithField("subject", subject).Error("Failed to publish message")
	}
	return err
}

// Close flushes buffered messages and closes the connection.
func Close() {
	if conn == nil {
		return
	}
	if err := conn.Drain(); err != nil {
		log.WithError(err).Warn("Failed to drain nats connection")
		conn.Close()
	}
	conn = nil
}
