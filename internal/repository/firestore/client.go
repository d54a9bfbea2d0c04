// Package firestore implements the repositories on Cloud Firestore, the
// document database backing the application.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

const (
	collectionOrganizations = "organizations"
	collectionMembers       = "members" // subcollection under an organization
	collectionShifts        = "shifts"
)

// NewClient initializes a Firestore client through the Firebase Admin SDK.
// Credentials come from the environment (GOOGLE_APPLICATION_CREDENTIALS or
// the metadata server).
func NewClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}
	return client, nil
}
