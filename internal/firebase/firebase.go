package firebase

import (
	"context"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/logging"
)

type clients struct {
	firestore *firestore.Client
	database  *db.Client
	auth      *auth.Client
	messaging *messaging.Client
}

var (
	once    sync.Once
	initted clients
)

func load() *clients {
	once.Do(func() {
		ctx := context.Background()
		logger := logging.FromContext(ctx).Named("firebase.init")

		firebaseURL := constants.FirebaseURL
		if url, exists := os.LookupEnv("FIREBASE_URL"); exists {
			firebaseURL = url
		}

		projectID := constants.ProjectID
		if id, exists := os.LookupEnv("PROJECT_ID"); exists {
			projectID = id
		}

		if firebaseURL == "NOOP" || projectID == "NOOP" {
			logger.Info("Mocking Firebase")
			return
		}

		conf := &firebase.Config{
			DatabaseURL: firebaseURL,
			ProjectID:   projectID,
		}

		app, err := firebase.NewApp(ctx, conf)
		if err != nil {
			logger.Fatalf("firebase.NewApp: %v", err)
		}
		if initted.database, err = app.Database(ctx); err != nil {
			logger.Fatalf("app.Database: %v", err)
		}
		if initted.firestore, err = app.Firestore(ctx); err != nil {
			logger.Fatalf("app.Firestore: %v", err)
		}
		if initted.auth, err = app.Auth(ctx); err != nil {
			logger.Fatalf("app.Auth: %v", err)
		}
		if initted.messaging, err = app.Messaging(ctx); err != nil {
			logger.Fatalf("app.Messaging: %v", err)
		}
	})
	return &initted
}

//Firestore Shared Firestore client, nil when mocked.
func Firestore() *firestore.Client {
	return load().firestore
}

//Database Shared Realtime DB client, nil when mocked.
func Database() *db.Client {
	return load().database
}

//Auth Shared Firebase Auth client, nil when mocked.
func Auth() *auth.Client {
	return load().auth
}

//Messaging Shared FCM client, nil when mocked.
func Messaging() *messaging.Client {
	return load().messaging
}
