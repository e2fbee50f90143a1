package client

import (
	"context"

	"github.com/trademinutes/tmclient/internal/client/models"
)

// AuthClient is the contract of the remote authentication API.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	FetchProfile(ctx context.Context, token string) (models.Profile, error)
	UpdateProfile(ctx context.Context, token string, p models.Profile) error
}

// NotificationClient is the contract of the notification service.
type NotificationClient interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	UpdateNotifications(ctx context.Context, action models.NotificationAction) error
}

// Client is everything the CLI talks to over the network.
type Client interface {
	AuthClient
	NotificationClient
}
