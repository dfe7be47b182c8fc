// cmd/seeddata/main.go — creates the admin account plus a small demo data
// set (products, inventory, a tracked order) on whichever backend DB_DRIVER
// selects. Safe to run repeatedly.
package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/config"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/infra"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DBDriver, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	gdb := db.Gorm()

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	admin := model.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	var existing model.User
	err = gdb.Where("username = ?", admin.Username).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := gdb.Create(&admin).Error; err != nil {
			log.Fatalf("create admin error: %v", err)
		}
	case err == nil:
		existing.Password = admin.Password
		existing.Email = admin.Email
		existing.Role = "admin"
		if err := gdb.Save(&existing).Error; err != nil {
			log.Fatalf("update admin error: %v", err)
		}
		admin = existing
	default:
		log.Fatalf("find admin error: %v", err)
	}

	seedProducts(gdb)
	seedTracking(gdb, admin.ID)

	fmt.Printf("admin '%s' ready, demo data seeded (%s)\n", cfg.AdminUsername, db.Driver())
}

func seedProducts(gdb *gorm.DB) {
	products := []struct {
		sku, name, category string
		safety, stock       int
	}{
		{"SKU1001", "Cardboard Box S", "packaging", 50, 200},
		{"SKU1002", "Cardboard Box L", "packaging", 30, 24},
		{"SKU1003", "Pallet Wrap Roll", "consumables", 20, 0},
	}
	for _, p := range products {
		var product model.Product
		err := gdb.Where("sku = ?", p.sku).First(&product).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("find product error: %v", err)
		}
		product = model.Product{
			SKU:         p.sku,
			Name:        p.name,
			Category:    p.category,
			SafetyStock: p.safety,
		}
		if err := gdb.Create(&product).Error; err != nil {
			log.Fatalf("create product error: %v", err)
		}
		inv := model.Inventory{
			ProductID:      product.ID,
			CurrentStock:   p.stock,
			AvailableStock: p.stock,
			LastUpdated:    time.Now(),
		}
		if err := gdb.Create(&inv).Error; err != nil {
			log.Fatalf("create inventory error: %v", err)
		}
	}
}

func seedTracking(gdb *gorm.DB, userID uint) {
	const trackingNumber = "MLL2024DEMO001"
	var count int64
	gdb.Model(&model.Tracking{}).Where("tracking_number = ?", trackingNumber).Count(&count)
	if count > 0 {
		return
	}

	order := model.Order{
		OrderNumber:  "ORD2024DEMO001",
		UserID:       userID,
		CustomerName: "Demo Customer",
		ServiceType:  "standard",
		Status:       "shipped",
	}
	if err := gdb.Create(&order).Error; err != nil {
		log.Fatalf("create order error: %v", err)
	}

	loc := "Yangon sorting hub"
	t := model.Tracking{
		TrackingNumber:  trackingNumber,
		OrderID:         &order.ID,
		CurrentStatus:   "in-transit",
		CurrentLocation: &loc,
	}
	if err := gdb.Create(&t).Error; err != nil {
		log.Fatalf("create tracking error: %v", err)
	}
	update := model.TrackingUpdate{
		TrackingID: t.ID,
		Status:     "picked-up",
		UpdateTime: time.Now().Add(-24 * time.Hour),
	}
	if err := gdb.Create(&update).Error; err != nil {
		log.Fatalf("create tracking update error: %v", err)
	}
}
