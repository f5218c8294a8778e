package go_jobboard

import (
	db2 "github.com/openhire/go-jobboard/internal/db"
	"github.com/openhire/go-jobboard/internal/serviceimpl"
	"github.com/openhire/go-jobboard/service"
	"gorm.io/gorm"
)

type JobBoardService struct {
	Companies service.CompanyService
	Jobs      service.JobService
	Users     service.UserService
}

func NewJobBoardService(db *gorm.DB) (*JobBoardService, error) {
	if err := db2.Migrate(db); err != nil {
		return nil, err
	}
	return &JobBoardService{
		Companies: serviceimpl.NewCompanyService(db),
		Jobs:      serviceimpl.NewJobService(db),
		Users:     serviceimpl.NewUserService(db),
	}, nil
}
