package dbmodels

type Company struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);uniqueIndex"`
	Name        string `gorm:"type:varchar(255)"`
	Inn         string `gorm:"type:varchar(20)"`
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(50)"`
	Description string
}
