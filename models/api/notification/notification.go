package notificationapimodels

import (
	"time"

	dbmodels "job-board-backend/models/db"
)

type NotificationView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Title:     rec.Title,
		Message:   rec.Message,
		CreatedAt: rec.CreatedAt,
	}
}
