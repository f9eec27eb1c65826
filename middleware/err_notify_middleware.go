package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotifyPayload struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

// ErrNotify отправляет ответы 5xx на внешний адрес (webhook мониторинга)
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		var data struct {
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil || data.Message == "" {
			data.Message = string(c.Response().Body())
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload, mErr := json.Marshal(errNotifyPayload{
			Code:   statusCode,
			Method: c.Method(),
			Path:   path,
			Error:  data.Message,
		})
		if mErr != nil {
			log.WithError(mErr).Warn("ошибка формирования уведомления об ошибке")
			return err
		}

		go func() {
			resp, reqErr := client.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(string(payload)))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			_ = resp.Body.Close()
		}()

		return err
	}
}
