package backup

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"strings"
	"time"

	"runner-game/circuitbreaker"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Record is the last authoritative state of a run that has not been
// confirmed as ended yet.
type Record struct {
	SessionID    string
	Score        int
	Speed        float64
	EarnedAmount float64
	SavedAt      time.Time
}

var client *redis.Client
var hostname = resolveHostname()

func resolveHostname() string {
	if h := os.Getenv("HOSTNAME"); h != "" {
		return h
	}
	h, err := os.Hostname()
	if err != nil {
		return "local"
	}
	return h
}

func prefix() string {
	return "runner:" + hostname + ":"
}

func key(sessionID string) string {
	return prefix() + sessionID
}

// Init connects to Redis. An empty url leaves the backup disabled and every
// other call a no-op.
func Init(ctx context.Context, redisURL string) {
	if redisURL == "" {
		log.Info("No backup redis configured")
		return
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	client = redis.NewClient(opts)

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.WithError(err).Error("Failed to connect to Redis")
	} else {
		log.Info("Connected to Redis at ", opts.Addr)
	}
}

func Enabled() bool {
	return client != nil
}

func Close() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.WithError(err).Warn("Failed to close Redis client")
	}
	client = nil
}

func ToBytes(r Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("encode backup record: %w", err)
	}
	return buf.Bytes(), nil
}

func FromBytes(data []byte) (Record, error) {
	var r Record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&r); err != nil {
		return Record{}, fmt.Errorf("decode backup record: %w", err)
	}
	return r, nil
}

func execute(fn func() (interface{}, error)) error {
	var err error
	if circuitbreaker.RedisBreaker != nil {
		_, err = circuitbreaker.RedisBreaker.Execute(fn)
	} else {
		_, err = fn()
	}
	return err
}

func Save(ctx context.Context, r Record) {
	if client == nil || r.SessionID == "" {
		return
	}
	data, err := ToBytes(r)
	if err != nil {
		log.WithError(err).Error("Failed to encode run backup")
		return
	}

	err = execute(func() (interface{}, error) {
		return nil, client.Set(ctx, key(r.SessionID), data, 0).Err()
	})
	if err != nil {
		log.WithError(err).WithField("session", r.SessionID).Error("Failed to save run backup")
	}
}

// Load returns every record this host left behind, keyed by session id.
func Load(ctx context.Context) map[string]Record {
	records := make(map[string]Record)
	if client == nil {
		return records
	}

	var keys []string
	err := execute(func() (interface{}, error) {
		var err error
		keys, err = client.Keys(ctx, prefix()+"*").Result()
		return nil, err
	})
	if err != nil {
		log.WithError(err).Error("Failed to list run backups")
		return records
	}

	for _, k := range keys {
		var raw string
		err := execute(func() (interface{}, error) {
			var err error
			raw, err = client.Get(ctx, k).Result()
			return nil, err
		})
		if err != nil {
			log.WithError(err).WithField("key", k).Error("Failed to read run backup")
			continue
		}

		r, err := FromBytes([]byte(raw))
		if err != nil {
			log.WithError(err).WithField("key", k).Error("Failed to decode run backup")
			continue
		}
		records[strings.TrimPrefix(k, prefix())] = r
	}
	return records
}

func Delete(ctx context.Context, sessionID string) {
	if client == nil || sessionID == "" {
		return
	}
	log.Debug("Deleting backup for session ", sessionID)

	err := execute(func() (interface{}, error) {
		return nil, client.Del(ctx, key(sessionID)).Err()
	})
	if err != nil {
		log.WithError(err).WithField("session", sessionID).Error("Failed to delete run backup")
	}
}
