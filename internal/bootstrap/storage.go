package bootstrap

import (
	"context"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
)

// InitStorage returns the app's default bucket (Config.StorageBucket).
func InitStorage(ctx context.Context, app *firebase.App) (*storage.BucketHandle, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}
	return client.DefaultBucket()
}
