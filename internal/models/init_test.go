package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openModelsTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	db := openModelsTestDB(t)
	catalog := DefaultCatalog()

	created, err := SeedCatalog(db, catalog)
	if err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}
	if created != len(catalog) {
		t.Fatalf("created want %d got %d", len(catalog), created)
	}

	created, err = SeedCatalog(db, DefaultCatalog())
	if err != nil {
		t.Fatalf("reseed catalog failed: %v", err)
	}
	if created != 0 {
		t.Fatalf("reseed should create nothing, got %d", created)
	}

	var gayo Product
	if err := db.Preload("Variants").Where("name = ?", "Gayo Arabica").First(&gayo).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if len(gayo.Variants) != 3 {
		t.Fatalf("variants want 3 got %d", len(gayo.Variants))
	}
}

func TestInitDefaultCatalogSkipsWhenProductsExist(t *testing.T) {
	db := openModelsTestDB(t)
	previous := DB
	DB = db
	t.Cleanup(func() { DB = previous })

	if err := db.Create(&Product{Name: "Custom Blend", Price: NewMoney(10000), IsActive: true}).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := InitDefaultCatalog(); err != nil {
		t.Fatalf("init default catalog failed: %v", err)
	}
	var count int64
	db.Model(&Product{}).Count(&count)
	if count != 1 {
		t.Fatalf("catalog should be untouched, count=%d", count)
	}
}
