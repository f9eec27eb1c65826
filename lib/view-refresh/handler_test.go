package viewrefresh

import (
	"testing"
	"time"

	"job-board-backend/models"
	wsmodels "job-board-backend/models/ws"

	"github.com/stretchr/testify/require"
)

type senderMock struct {
	messages []wsmodels.ServerMessage
}

func (s *senderMock) SendMessage(msg wsmodels.ServerMessage) {
	s.messages = append(s.messages, msg)
}

func TestRefresh(t *testing.T) {
	t.Run(`refresh drops only named views`, func(t *testing.T) {
		handler := NewInstance(time.Minute, nil)
		handler.Set(models.ApplicantDashboardView, "u1", 1)
		handler.Set(models.ApplicantDashboardView, "u2", 2)
		handler.Set(models.EmployerDashboardView, "e1", 3)

		handler.Refresh([]models.ViewName{models.ApplicantDashboardView})

		_, ok := handler.Get(models.ApplicantDashboardView, "u1")
		require.False(t, ok)
		_, ok = handler.Get(models.ApplicantDashboardView, "u2")
		require.False(t, ok)
		value, ok := handler.Get(models.EmployerDashboardView, "e1")
		require.True(t, ok)
		require.Equal(t, 3, value)
	})

	t.Run(`refresh signal per user and view`, func(t *testing.T) {
		sender := &senderMock{}
		handler := NewInstance(time.Minute, sender)

		handler.Refresh([]models.ViewName{models.ApplicantDashboardView, models.EmployerDashboardView}, "u1", "", "u1", "e1")

		require.Len(t, sender.messages, 4)
		for _, msg := range sender.messages {
			require.Equal(t, wsmodels.RefreshCode, msg.Code)
		}
		require.Equal(t, "u1", sender.messages[0].ToUserID)
		require.Equal(t, string(models.ApplicantDashboardView), sender.messages[0].Msg)
		require.Equal(t, "e1", sender.messages[3].ToUserID)
	})
}
