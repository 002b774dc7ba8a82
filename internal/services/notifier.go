package services

import (
	"github.com/arnold/nutritrack-api/internal/database"
	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AchievementNotifier implements the nutrition.Notifier sink: each
// achievement becomes an in-app notification row plus a best-effort push.
// Delivery never blocks the caller.
type AchievementNotifier struct {
	push *PushService
	log  zerolog.Logger
}

func NewAchievementNotifier(push *PushService, log zerolog.Logger) *AchievementNotifier {
	return &AchievementNotifier{push: push, log: log}
}

func (n *AchievementNotifier) Send(userID uuid.UUID, kind, title, body string) {
	notif := models.Notification{
		UserID: userID,
		Type:   kind,
		Title:  title,
		Body:   body,
	}
	if err := database.DB.Create(&notif).Error; err != nil {
		n.log.Error().Err(err).Str("user", userID.String()).Msg("failed to record notification")
	}

	if n.push != nil {
		go n.push.SendToUser(userID, title, body)
	}
}
