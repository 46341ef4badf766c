package bootstrap

import (
	"context"

	firebase "firebase.google.com/go/v4"

	"github.com/GregMSThompson/ledger-backend/internal/config"
)

func InitFirebase(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	return firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	})
}
