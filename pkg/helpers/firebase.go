package helpers

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// NewFirebaseApp initializes the Firebase Admin app. If credsPath is empty,
// Application Default Credentials are used.
func NewFirebaseApp(ctx context.Context, projectID, credsPath string) (*firebase.App, error) {
	cfg := &firebase.Config{ProjectID: projectID}
	if credsPath == "" {
		return firebase.NewApp(ctx, cfg)
	}
	return firebase.NewApp(ctx, cfg, option.WithCredentialsFile(credsPath))
}

// NewAuthClient returns the Admin SDK auth client for user management.
func NewAuthClient(ctx context.Context, app *firebase.App) (*fbauth.Client, error) {
	return app.Auth(ctx)
}

// NewFirestoreClient returns the Firestore client backing both collections.
func NewFirestoreClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	return app.Firestore(ctx)
}
