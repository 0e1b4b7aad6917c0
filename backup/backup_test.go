package backup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEncoding(t *testing.T) {
	in := Record{
		SessionID:    "665f1c",
		Score:        42,
		Speed:        1.3,
		EarnedAmount: 2.1,
		SavedAt:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := ToBytes(in)
	require.NoError(t, err)

	out, err := FromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, in.SessionID, out.SessionID)
	assert.Equal(t, in.Score, out.Score)
	assert.Equal(t, in.EarnedAmount, out.EarnedAmount)
	assert.True(t, in.SavedAt.Equal(out.SavedAt))
}

func TestFromBytesRejectsGarbage(t *testing.T) {
	_, err := FromBytes([]byte("not gob"))
	assert.Error(t, err)
}

func TestKeysAreHostScoped(t *testing.T) {
	prev := hostname
	hostname = "box-1"
	t.Cleanup(func() { hostname = prev })

	assert.Equal(t, "runner:box-1:s1", key("s1"))
}

func TestDisabledBackupIsNoop(t *testing.T) {
	ctx := context.Background()
	Init(ctx, "")
	require.False(t, Enabled())

	Save(ctx, Record{SessionID: "s1"})
	Delete(ctx, "s1")
	assert.Empty(t, Load(ctx))
	Close()
}
