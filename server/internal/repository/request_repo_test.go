package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func requestIDs(rs []models.ItemRequest) []int64 {
	return ids(rs, func(r models.ItemRequest) int64 { return r.ID })
}

func TestRequestRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "alice@example.com")
	bob := seedUser(t, db, "bob", "bob@example.com")

	older := &models.ItemRequest{Description: "need a ladder", RequesterID: alice.ID, Created: baseTime}
	newer := &models.ItemRequest{Description: "need a tent", RequesterID: alice.ID, Created: baseTime.Add(time.Hour)}
	bobs := &models.ItemRequest{Description: "need a bike", RequesterID: bob.ID, Created: baseTime.Add(2 * time.Hour)}
	for _, r := range []*models.ItemRequest{older, newer, bobs} {
		require.NoError(t, repo.Create(ctx, r))
	}

	ladder := seedItem(t, db, bob.ID, "Ladder", "3m", true)
	require.NoError(t, db.Model(ladder).Update("request_id", older.ID).Error)

	t.Run("FindByRequester", func(t *testing.T) {
		got, err := repo.FindByRequester(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{newer.ID, older.ID}, requestIDs(got))
		assert.Empty(t, got[0].Items)
		require.Len(t, got[1].Items, 1)
		assert.Equal(t, ladder.ID, got[1].Items[0].ID)
	})

	t.Run("FindOthers", func(t *testing.T) {
		got, err := repo.FindOthers(ctx, bob.ID, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{newer.ID, older.ID}, requestIDs(got))

		got, err = repo.FindOthers(ctx, alice.ID, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []int64{bobs.ID}, requestIDs(got))

		got, err = repo.FindOthers(ctx, bob.ID, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{older.ID}, requestIDs(got))
	})

	t.Run("FindByID", func(t *testing.T) {
		got, err := repo.FindByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "need a ladder", got.Description)
		assert.Len(t, got.Items, 1)

		_, err = repo.FindByID(ctx, 999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
