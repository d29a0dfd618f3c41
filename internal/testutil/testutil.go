// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/shop_catalog/internal/db"
	"github.com/Skotchmaster/shop_catalog/internal/hash"
	"github.com/Skotchmaster/shop_catalog/internal/models"
)

var dbSeq atomic.Int64

// NewDB opens a private in-memory sqlite database with all tables migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", dbSeq.Add(1))
	cfg := db.Config()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	gdb, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), gdb))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

type Fixture struct {
	Users      []models.User
	Categories []models.Category
	Products   []models.Product
}

const Password = "password123"

// Seed inserts two users, two categories and 25 shoes plus 3 hats.
func Seed(t *testing.T, gdb *gorm.DB) Fixture {
	t.Helper()

	pw, err := hash.HashPassword(Password)
	require.NoError(t, err)

	f := Fixture{
		Users: []models.User{
			{Email: "ann@example.com", Password: pw, UserName: "ann"},
			{Email: "bob@example.com", Password: pw, UserName: "bob"},
		},
		Categories: []models.Category{
			{Name: "Shoes"},
			{Name: "Hats"},
		},
	}
	require.NoError(t, gdb.Create(&f.Users).Error)
	require.NoError(t, gdb.Create(&f.Categories).Error)

	for i := 1; i <= 25; i++ {
		f.Products = append(f.Products, models.Product{
			Name:       fmt.Sprintf("Shoe %02d", i),
			Price:      float64(100 - i),
			Stock:      i,
			CategoryID: f.Categories[0].ID,
		})
	}
	for i := 1; i <= 3; i++ {
		f.Products = append(f.Products, models.Product{
			Name:       fmt.Sprintf("Hat %d", i),
			Price:      float64(10 * i),
			Stock:      1,
			CategoryID: f.Categories[1].ID,
		})
	}
	require.NoError(t, gdb.Create(&f.Products).Error)
	return f
}
