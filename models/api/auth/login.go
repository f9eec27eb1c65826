package authapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"` // почта или телефон
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	login := strings.TrimSpace(r.Email)
	if login == "" {
		return errors.New("не указана почта или телефон")
	}
	if strings.Contains(login, "@") {
		if _, err := mail.ParseAddress(login); err != nil {
			return errors.New("почта имеет неправильный формат")
		}
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}
