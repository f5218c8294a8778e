package models

import (
	"github.com/shopspring/decimal"
)

type Company struct {
	Handle       string  `gorm:"primaryKey;size:25" json:"handle"`
	Name         string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	NumEmployees *int    `gorm:"index" json:"numEmployees"`
	LogoURL      *string `gorm:"type:text" json:"logoUrl"`

	Jobs []Job `gorm:"foreignKey:CompanyHandle;references:Handle" json:"jobs,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

type Job struct {
	ID            int64            `gorm:"primaryKey" json:"id"`
	Title         string           `gorm:"size:255;not null;index" json:"title"`
	Salary        *int64           `gorm:"index" json:"salary"`
	Equity        *decimal.Decimal `gorm:"type:decimal(4,3)" json:"equity"` // ownership fraction, 0..1
	CompanyHandle string           `gorm:"size:25;not null;index" json:"companyHandle"`

	Company *Company `gorm:"foreignKey:CompanyHandle;references:Handle" json:"company,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}

type User struct {
	Username  string `gorm:"primaryKey;size:25" json:"username"`
	Password  string `gorm:"size:100;not null" json:"-"` // bcrypt hash, never serialized
	FirstName string `gorm:"size:30;not null" json:"firstName"`
	LastName  string `gorm:"size:30;not null" json:"lastName"`
	Email     string `gorm:"size:60;not null" json:"email"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`
}

func (User) TableName() string {
	return "users"
}

type Application struct {
	Username string `gorm:"primaryKey;size:25" json:"username"`
	JobID    int64  `gorm:"primaryKey" json:"jobId"`

	User User `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
	Job  Job  `gorm:"foreignKey:JobID;references:ID" json:"job,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
