package dbmodels

import (
	"fmt"
	"strings"

	"job-board-backend/models"
)

type User struct {
	BaseModel
	Email      string          `gorm:"type:varchar(255);uniqueIndex"`
	Password   string          `gorm:"type:varchar(255)"`
	FirstName  string          `gorm:"type:varchar(255)"`
	LastName   string          `gorm:"type:varchar(255)"`
	Patronymic string          `gorm:"type:varchar(255)"`
	Phone      string          `gorm:"type:varchar(50)"`
	Role       models.UserRole `gorm:"type:varchar(50);index"`
}

func (u User) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", u.LastName, u.FirstName))
}

func (u User) GetFIO() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v %v", u.LastName, u.FirstName, u.Patronymic))
}
