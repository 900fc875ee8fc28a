package repository

import (
	"testing"
	"time"

	"github.com/Eursukkul/shareit/config"
	"github.com/Eursukkul/shareit/pkg/database"
	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2030, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedItem(t *testing.T, db *gorm.DB, ownerID int64, name, description string, available bool) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, Description: description, Available: available, OwnerID: ownerID}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedBooking(t *testing.T, db *gorm.DB, itemID, bookerID int64, start, end time.Time, status models.BookingStatus) *models.Booking {
	t.Helper()
	b := &models.Booking{ItemID: itemID, BookerID: bookerID, Start: start, End: end, Status: status}
	require.NoError(t, db.Create(b).Error)
	return b
}

func ids[T any](rows []T, id func(T) int64) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = id(r)
	}
	return out
}

func bookingIDs(bs []models.Booking) []int64 {
	return ids(bs, func(b models.Booking) int64 { return b.ID })
}
