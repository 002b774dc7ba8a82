package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/arnold/nutritrack-api/internal/database"
	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// PushService sends push notifications via Firebase Cloud Messaging.
type PushService struct {
	client *messaging.Client
	log    zerolog.Logger
}

// Global push service instance
var Push *PushService

// InitPush initializes the Firebase push notification service.
// Returns nil gracefully if no service account is configured (dev mode).
func InitPush(serviceAccountPath string, log zerolog.Logger) error {
	if serviceAccountPath == "" {
		log.Info().Msg("FCM: no service account configured, push notifications disabled")
		Push = &PushService{log: log}
		return nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountPath))
	if err != nil {
		log.Error().Err(err).Msg("FCM: failed to initialize Firebase app")
		Push = &PushService{log: log}
		return nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Error().Err(err).Msg("FCM: failed to get messaging client")
		Push = &PushService{log: log}
		return nil
	}

	Push = &PushService{client: client, log: log}
	log.Info().Msg("FCM: push notifications enabled")
	return nil
}

// SendToUser sends a push notification to a user by their ID.
// No-op if push is not configured or the user has no FCM token.
func (p *PushService) SendToUser(userID uuid.UUID, title, body string) {
	if p.client == nil {
		return
	}

	var user models.User
	if err := database.DB.Select("fcm_token").First(&user, userID).Error; err != nil {
		return
	}

	if user.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	if _, err := p.client.Send(context.Background(), msg); err != nil {
		p.log.Error().Err(err).Str("user", userID.String()).Msg("FCM: failed to send")
	}
}
