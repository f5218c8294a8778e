package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/openhire/go-jobboard/models"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202601121530-jb-108231",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(&models.Company{}, &models.Job{}, &models.User{}, &models.Application{})
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(&models.Application{}, &models.Job{}, &models.User{}, &models.Company{})
	},
}
