package connection

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirestoreConnection initializes the Firestore client. Credentials come
// from FIREBASE_CREDENTIALS_FILE when set, otherwise application default
// credentials apply.
func FirestoreConnection() (*firestore.Client, error) {
	ctx := context.Background()

	conf := &firebase.Config{
		ProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
	}

	var opts []option.ClientOption
	if credFile := os.Getenv("FIREBASE_CREDENTIALS_FILE"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, err
	}
	return app.Firestore(ctx)
}
