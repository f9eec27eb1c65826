package dbmodels

type SystemLog struct {
	BaseModel
	Action    string
	UserEmail string `gorm:"type:varchar(255)"`
}
