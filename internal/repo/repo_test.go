package repo

import (
	"Catalog/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// У каждого теста своя именованная база, чтобы данные не пересекались.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(Models...); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func mkUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u, err := NewUserRepository(db).CreateUser(context.Background(), &model.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "hash",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func mkBrand(t *testing.T, db *gorm.DB, name string, categories ...string) *model.Brand {
	t.Helper()
	b := &model.Brand{ID: uuid.NewString(), Name: name, Logo: model.DefaultBrandLogo, Categories: categories}
	if err := NewBrandRepository(db).Create(context.Background(), b); err != nil {
		t.Fatalf("create brand %s: %v", name, err)
	}
	return b
}

func mkProduct(t *testing.T, db *gorm.DB, name string, brand *model.Brand, category string, price float64, owner int64) *model.Product {
	t.Helper()
	p := &model.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: name + " description",
		Price:       price,
		Category:    category,
		BrandID:     brand.ID,
		Image:       model.DefaultProductImage,
		AddedBy:     owner,
	}
	if err := NewProductRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return p
}

// failOnQuery регистрирует колбэк, который валит тест при любом обращении к БД.
func failOnQuery(t *testing.T, db *gorm.DB) {
	t.Helper()
	fail := func(tx *gorm.DB) { t.Errorf("unexpected query: %s", tx.Statement.SQL.String()) }
	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:fail_query", fail))
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_update", fail))
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_delete", fail))
}
