package main

import (
	"context"
	"time"

	"runner-game/backup"
	"runner-game/circuitbreaker"
	"runner-game/config"
	"runner-game/game"
	"runner-game/nats"
	"runner-game/relay"
	"runner-game/render"
	"runner-game/server"
	"runner-game/session"
	"runner-game/tracing"

	log "github.com/sirupsen/logrus"
)

func main() {
	conf := config.Init()
	config.SetupLogging(conf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Setup(ctx, "runner-game", conf.OtelEndpoint)
	if err != nil {
		log.WithError(err).Warn("Failed to set up tracing")
	}

	tuning, err := config.LoadTuning(conf.TuningFile)
	if err != nil {
		log.WithError(err).Warn("Failed to load tuning, using defaults")
	}

	circuitbreaker.InitBreakers()

	client := session.NewClient(session.Options{
		BaseURL: conf.APIBaseURL,
		Token:   session.StaticToken(conf.APIToken),
		Timeout: conf.RequestTimeout,
		Breaker: circuitbreaker.SessionBreaker,
	})

	backup.Init(ctx, conf.BackupRedisURL)
	nats.Connect(conf.NatsURL)
	backup.Recover(ctx, client)

	events := relay.New(relay.Options{})
	events.Start(ctx)

	engine := game.New(game.Options{
		Service:    client,
		Tuning:     tuning,
		Sink:       events,
		DepositURL: conf.DepositURL,
		OnDepositRequired: func() {
			log.WithField("url", conf.DepositURL).Info("Deposit required to play")
		},
	})

	spectators := server.New(engine)
	if err := spectators.Start(":"+conf.HTTPPort, ":"+conf.GRPCPort); err != nil {
		log.WithError(err).Warn("Spectator server disabled")
	}

	g := render.NewGame(render.Options{
		Engine:  engine,
		Sprites: render.LoadSprites(conf.AssetDir),
	})
	if err := render.Run(g, conf.Title); err != nil {
		log.WithError(err).Error("Game loop stopped")
	}
	engine.Close()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()

	spectators.Shutdown(stopCtx)
	events.Stop()
	nats.Close()
	backup.Close()
	if err := shutdownTracing(stopCtx); err != nil {
		log.WithError(err).Warn("Failed to flush traces")
	}
}
