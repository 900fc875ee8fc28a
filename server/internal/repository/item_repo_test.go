package repository

import (
	"context"
	"testing"

	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemIDs(items []models.Item) []int64 {
	return ids(items, func(i models.Item) int64 { return i.ID })
}

func TestItemRepository_FindByOwnerPaged(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner", "owner@example.com")
	other := seedUser(t, db, "other", "other@example.com")
	a := seedItem(t, db, owner.ID, "A", "first", true)
	b := seedItem(t, db, owner.ID, "B", "second", false)
	c := seedItem(t, db, owner.ID, "C", "third", true)
	seedItem(t, db, other.ID, "X", "not mine", true)

	all, err := repo.FindByOwner(ctx, owner.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, itemIDs(all))

	page, err := repo.FindByOwner(ctx, owner.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID}, itemIDs(page))
}

func TestItemRepository_UpdateKeepsOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner", "owner@example.com")
	item := &models.Item{Name: "Drill", Description: "Cordless", Available: true, OwnerID: owner.ID}
	require.NoError(t, repo.Create(ctx, item))

	item.Available = false
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, owner.ID, got.OwnerID)
}

func TestItemRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner", "owner@example.com")
	drill := seedItem(t, db, owner.ID, "Power DRILL", "Makita", true)
	screw := seedItem(t, db, owner.ID, "Screwdriver", "works like a drill", true)
	seedItem(t, db, owner.ID, "Old drill", "broken", false)
	seedItem(t, db, owner.ID, "Hammer", "steel", true)

	found, err := repo.Search(ctx, "dRiLl", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{drill.ID, screw.ID}, itemIDs(found))

	found, err = repo.Search(ctx, "drill", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{screw.ID}, itemIDs(found))

	found, err = repo.Search(ctx, "kettle", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestItemRepository_SearchWildcardsAreLiteral(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner", "owner@example.com")
	seedItem(t, db, owner.ID, "Drill", "Makita", true)
	seedItem(t, db, owner.ID, "Tent", "4 person", true)
	cotton := seedItem(t, db, owner.ID, "Sheet", "100% cotton", true)
	ruler := seedItem(t, db, owner.ID, "snake_ruler", "flexible", true)
	path := seedItem(t, db, owner.ID, "Sign", `C:\tools`, true)

	found, err := repo.Search(ctx, "%", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{cotton.ID}, itemIDs(found))

	found, err = repo.Search(ctx, "_", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{ruler.ID}, itemIDs(found))

	found, err = repo.Search(ctx, `\`, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{path.ID}, itemIDs(found))

	found, err = repo.Search(ctx, "0%", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{cotton.ID}, itemIDs(found))
}
