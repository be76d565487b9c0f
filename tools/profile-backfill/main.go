// Command profile-backfill creates missing profiles for every Firebase Auth user.
package main

import (
	"context"
	"flag"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/logging"
	"google.golang.org/api/iterator"
)

var dryRun = flag.Bool("dry-run", false, "only report users without profile")

//user Part of a Firebase Auth record the backfill needs.
type user struct {
	UID         string
	Email       string
	DisplayName string
}

//users Iterates Firebase Auth users.
type users interface {
	Next() (*user, error)
}

type authUsers struct {
	iter *fbauth.UserIterator
}

func (u authUsers) Next() (*user, error) {
	record, err := u.iter.Next()
	if err != nil {
		return nil, err
	}
	return &user{UID: record.UID, Email: record.Email, DisplayName: record.DisplayName}, nil
}

func backfill(ctx context.Context, env *environment.Environment, it users, dryRun bool) (created int, err error) {
	logger := logging.FromContext(ctx).Named("profile-backfill")

	for {
		u, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return created, err
		}

		existing, err := profile.GetUserProfile(ctx, env.Store, u.UID)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}

		logger.Infof("User %v has no profile", u.UID)
		if dryRun {
			continue
		}

		if _, err := profile.CreateUserProfile(ctx, env.Store, env.Moment(), u.UID, u.Email, u.DisplayName); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func main() {
	flag.Parse()

	ctx := context.Background()
	logger := logging.FromContext(ctx).Named("profile-backfill")

	client := firebase.Auth()
	if client == nil {
		logger.Fatal("Firebase Auth is not configured")
	}

	// Users() retrieves 1000 users at a time behind the scenes
	it := authUsers{iter: client.Users(ctx, "")}

	created, err := backfill(ctx, environment.Default(ctx), it, *dryRun)
	if err != nil {
		logger.Fatalf("Backfill failed after %v profiles: %v", created, err)
	}

	logger.Infof("Created %v profiles", created)
}
