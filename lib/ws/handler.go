package ws

import (
	wsclient "job-board-backend/lib/ws/client"
	connectionhub "job-board-backend/lib/ws/hub/connection-hub"
	"job-board-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(router fiber.Router) {
	router.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		return ctx.Next()
	}, middleware.WsAuthorizationRequired(), func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", middleware.GetUserID(ctx))
		return ctx.Next()
	})
	router.Get("", websocket.New(pushHandler))
}

// @Summary Системные пуши
// @Tags Websocket Системные пуши
// @Description Уведомления и сигналы обновления экранов (code: notification/refresh)
// @Param   token		query		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 401
// @Failure 426
// @router /api/v1/ws [get]
func pushHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID, c)
	}()
	client.Dispatch()
}
