package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/ledger-backend/internal/config"
	"github.com/GregMSThompson/ledger-backend/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Firebase  *auth.Client
	Bucket    *storage.BucketHandle
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	slog.SetDefault(bs.Log)

	if err = cfg.Validate(); err != nil {
		return bs, err
	}

	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	app, err := InitFirebase(applicationCtx, cfg)
	if err != nil {
		return bs, err
	}
	bs.Firebase, err = app.Auth(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.Bucket, err = InitStorage(applicationCtx, app)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("failed to close firestore client", "error", err)
		}
	}
}
