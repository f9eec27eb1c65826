package notificationhandler

import (
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	testdb "job-board-backend/lib/utils/test-db"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
	dbmodels "job-board-backend/models/db"
	wsmodels "job-board-backend/models/ws"
)

type hubMock struct {
	mu   sync.Mutex
	msgs []wsmodels.ServerMessage
}

func (h *hubMock) AddClient(userID string, conn *websocket.Conn) {}
func (h *hubMock) DeleteClient(userID string, conn *websocket.Conn) {}
func (h *hubMock) IsConnected(userID string) bool { return true }

func (h *hubMock) SendMessage(msg wsmodels.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, msg)
}

type mailerMock struct {
	mu         sync.Mutex
	configured bool
	sent       []string
}

func (m *mailerMock) IsConfigured() bool {
	return m.configured
}

func (m *mailerMock) SendEMail(to, subject, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

func (m *mailerMock) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func createUser(t *testing.T, db *gorm.DB) dbmodels.User {
	rec := dbmodels.User{Email: "ivanov@mail.ru", FirstName: "Иван", Role: models.ApplicantRole}
	require.NoError(t, db.Create(&rec).Error)
	return rec
}

func TestEmit(t *testing.T) {
	db := testdb.New(t)
	user := createUser(t, db)
	handler := NewInstance(db, nil, nil)

	t.Run(`renders template`, func(t *testing.T) {
		rec, err := handler.Emit(db, user.ID, models.NotifyInvitation, "Аналитик")
		require.NoError(t, err)
		require.Equal(t, "Приглашение на собеседование", rec.Title)
		require.Contains(t, rec.Message, "«Аналитик»")
	})

	t.Run(`rolled back with transaction`, func(t *testing.T) {
		err := db.Transaction(func(tx *gorm.DB) error {
			_, err := handler.Emit(tx, user.ID, models.NotifyApplicantWelcome)
			require.NoError(t, err)
			return gorm.ErrInvalidData
		})
		require.Error(t, err)
		var count int64
		require.NoError(t, db.Model(&dbmodels.Notification{}).Count(&count).Error)
		require.Equal(t, int64(1), count)
	})
}

func TestDeliver(t *testing.T) {
	db := testdb.New(t)
	user := createUser(t, db)
	rec := dbmodels.Notification{UserID: user.ID, Title: "Привет", Message: "Сообщение"}
	require.NoError(t, db.Create(&rec).Error)

	t.Run(`websocket and email`, func(t *testing.T) {
		hub := &hubMock{}
		mailer := &mailerMock{configured: true}
		NewInstance(db, hub, mailer).Deliver(rec)
		require.Len(t, hub.msgs, 1)
		require.Equal(t, user.ID, hub.msgs[0].ToUserID)
		require.Equal(t, wsmodels.NotificationCode, hub.msgs[0].Code)
		require.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 10*time.Millisecond)
		require.Equal(t, []string{"ivanov@mail.ru|Привет"}, mailer.sent)
	})

	t.Run(`mailer not configured`, func(t *testing.T) {
		mailer := &mailerMock{}
		NewInstance(db, nil, mailer).Deliver(rec)
		require.Zero(t, mailer.count())
	})
}

func TestList(t *testing.T) {
	db := testdb.New(t)
	user := createUser(t, db)
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for idx := 0; idx < 5; idx++ {
		require.NoError(t, db.Create(&dbmodels.Notification{
			BaseModel: dbmodels.BaseModel{CreatedAt: start.Add(time.Duration(idx) * time.Hour)},
			UserID:    user.ID,
			Title:     string(rune('A' + idx)),
		}).Error)
	}
	require.NoError(t, db.Create(&dbmodels.Notification{UserID: "other", Title: "Чужое"}).Error)
	handler := NewInstance(db, nil, nil)

	list, rowCount, err := handler.List(user.ID, apimodels.Pagination{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, int64(5), rowCount)
	require.Equal(t, "C", list[0].Title)
	require.Equal(t, "B", list[1].Title)

	last, err := handler.ListLast(user.ID, 3)
	require.NoError(t, err)
	require.Len(t, last, 3)
	require.Equal(t, "E", last[0].Title)
}
