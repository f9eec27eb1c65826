package viewrefresh

import (
	"fmt"
	"strings"
	"time"

	"job-board-backend/models"
	wsmodels "job-board-backend/models/ws"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// Provider кэш данных экранов и сигнал их обновления
type Provider interface {
	Get(view models.ViewName, userID string) (interface{}, bool)
	Set(view models.ViewName, userID string, value interface{})
	// Refresh сбрасывает кэш экранов и отправляет сигнал обновления подключенным пользователям
	Refresh(views []models.ViewName, userIDs ...string)
}

// Sender доставка сообщений клиентам по websocket
type Sender interface {
	SendMessage(msg wsmodels.ServerMessage)
}

var Instance Provider

func NewHandler(ttl time.Duration, sender Sender) {
	Instance = NewInstance(ttl, sender)
}

func NewInstance(ttl time.Duration, sender Sender) Provider {
	return &impl{
		cache:  cache.New(ttl, ttl*2),
		sender: sender,
	}
}

type impl struct {
	cache  *cache.Cache
	sender Sender
}

const cacheKeyPattern = "%v:%v"

func getCacheKey(view models.ViewName, userID string) string {
	return fmt.Sprintf(cacheKeyPattern, view, userID)
}

func (i impl) Get(view models.ViewName, userID string) (interface{}, bool) {
	return i.cache.Get(getCacheKey(view, userID))
}

func (i impl) Set(view models.ViewName, userID string, value interface{}) {
	i.cache.SetDefault(getCacheKey(view, userID), value)
}

func (i impl) Refresh(views []models.ViewName, userIDs ...string) {
	for _, view := range views {
		prefix := string(view) + ":"
		for key := range i.cache.Items() {
			if strings.HasPrefix(key, prefix) {
				i.cache.Delete(key)
			}
		}
	}
	log.
		WithField("views", views).
		WithField("user_ids", userIDs).
		Debug("сброшены данные экранов")
	if i.sender == nil {
		return
	}
	now := time.Now().Format("02.01.2006 15:04:05")
	sent := map[string]bool{}
	for _, userID := range userIDs {
		if userID == "" || sent[userID] {
			continue
		}
		sent[userID] = true
		for _, view := range views {
			i.sender.SendMessage(wsmodels.ServerMessage{
				ToUserID: userID,
				Time:     now,
				Code:     wsmodels.RefreshCode,
				Msg:      string(view),
			})
		}
	}
}
