package authapimodels

import "job-board-backend/models"

type JWTResponse struct {
	Token string `json:"token"`
	User  MeView `json:"user"`
}

// MeView текущий пользователь для клиента
type MeView struct {
	ID          string                                `json:"id"`
	Email       string                                `json:"email"`
	FullName    string                                `json:"full_name"`
	Role        models.UserRole                       `json:"role"`
	Permissions map[models.Module][]models.Permission `json:"permissions,omitempty"` // доступные разделы для интерфейса
}
