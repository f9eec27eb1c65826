package wsmodels

type MessageCode string

const (
	NotificationCode MessageCode = "notification"
	RefreshCode      MessageCode = "refresh"
)

type ServerMessage struct {
	ToUserID string      `json:"-"`
	Time     string      `json:"time"`            // время события
	Code     MessageCode `json:"code"`            // код события
	Title    string      `json:"title,omitempty"` // заголовок уведомления
	Msg      string      `json:"msg"`             // текст события или имя экрана для обновления
}
