package dbmodels

type Notification struct {
	BaseModel
	UserID  string `gorm:"type:varchar(36);index"`
	Title   string `gorm:"type:varchar(255)"`
	Message string
}
