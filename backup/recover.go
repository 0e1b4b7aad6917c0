package backup

import (
	"context"

	"runner-game/session"

	log "github.com/sirupsen/logrus"
)

// Finalizer is the part of the session service needed to close a run that
// the previous process left open.
type Finalizer interface {
	Active(ctx context.Context) (*session.Session, error)
	End(ctx context.Context, id string) (session.Result, error)
}

// Recover ends the run a previous process lost track of. Every leftover record
// is removed afterwards; the service stays the source of truth.
func Recover(ctx context.Context, svc Finalizer) {
	records := Load(ctx)
	if len(records) == 0 {
		return
	}
	for _, id := range recoverRecords(ctx, svc, records) {
		Delete(ctx, id)
	}
}

// recoverRecords ends the active session when it matches a leftover record
// and returns the ids that can be dropped from the backup.
func recoverRecords(ctx context.Context, svc Finalizer, records map[string]Record) []string {
	active, err := svc.Active(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to look up active session, keeping run backups")
		return nil
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}

	if active == nil {
		return ids
	}
	if _, ok := records[active.ID]; !ok {
		return ids
	}

	res, err := svc.End(ctx, active.ID)
	if err != nil {
		log.WithError(err).WithField("session", active.ID).Error("Failed to end recovered session")
		return nil
	}
	log.WithFields(log.Fields{
		"session": active.ID,
		"score":   res.Score,
		"earned":  res.EarnedAmount,
	}).Info("Ended session left open by a previous run")
	return ids
}
