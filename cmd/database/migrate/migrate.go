package migration

import (
	"fmt"
	"log"

	"weekend-planner/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Selection{}); err != nil {
		log.Fatalf("Error migrating selection database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
