package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetDbConn 建立postgres連線
// sslmode留空時視為disable，本地開發與測試不走TLS
func GetDbConn(dbname, host, port, user, pas, sslmode string) (*gorm.DB, error) {
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=%s TimeZone=UTC",
		user, pas, host, port, dbname, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return db, nil
}
