package profile

import (
	"context"
	"fmt"
	"net/http"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/communitystats"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//Patch Fields of the profile a user may change. Nil fields stay unchanged.
type Patch struct {
	Email           *string
	DisplayName     *string
	ActivityStatus  *structs.ActivityStatus
	StepGoal        *int
	Avatar          *structs.Avatar
	ProfileComplete *bool
}

//Load Reads the user profile inside a transaction. Missing profile is a NotFoundError.
func Load(tx store.Tx, uid string) (*structs.UserProfile, error) {
	var p structs.UserProfile
	if err := tx.Get(constants.CollectionUsers, uid, &p); err != nil {
		if store.IsNotFound(err) {
			return nil, &errors.NotFoundError{Msg: fmt.Sprintf("User profile %v not found", uid)}
		}
		return nil, errors.Transient("Error while querying Firestore", err)
	}
	return &p, nil
}

//Save Writes the user profile inside a transaction.
func Save(tx store.Tx, p *structs.UserProfile, at calendar.Moment) error {
	p.UpdatedAt = at.Now.Unix()
	return tx.Set(constants.CollectionUsers, p.UID, p)
}

func newProfile(uid string, at calendar.Moment) *structs.UserProfile {
	return &structs.UserProfile{
		UID:                uid,
		BadgesEarned:       []string{},
		ChrysalisCoinDates: []string{},
		Avatar:             structs.Avatar{Kind: structs.AvatarDefault},
		CreatedAt:          at.Now.Unix(),
	}
}

//GetUserProfileHandler Builds GetUserProfile handler over given environment.
func GetUserProfileHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("get-user-profile")

		var request v1.IDTokenRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		p, err := GetUserProfile(ctx, env.Store, uid)
		if err != nil {
			logger.Warnf("Cannot handle request due to error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.UserProfileResponse{Profile: p})
	}
}

//CreateUserProfileHandler Builds CreateUserProfile handler over given environment.
func CreateUserProfileHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("create-user-profile")

		var request v1.CreateUserProfileRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		p, err := CreateUserProfile(ctx, env.Store, env.Moment(), uid, request.Email, request.DisplayName)
		if err != nil {
			logger.Warnf("Cannot handle request due to error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.UserProfileResponse{Profile: p})
	}
}

//UpdateUserProfileHandler Builds UpdateUserProfile handler over given environment.
func UpdateUserProfileHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("update-user-profile")

		var request v1.UpdateUserProfileRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		patch := Patch{
			DisplayName:     request.DisplayName,
			ActivityStatus:  request.ActivityStatus,
			StepGoal:        request.StepGoal,
			Avatar:          request.Avatar,
			ProfileComplete: request.ProfileComplete,
		}

		p, err := UpdateUserProfile(ctx, env.Store, env.Moment(), uid, patch)
		if err != nil {
			logger.Debugf("Cannot update profile: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.UserProfileResponse{Profile: p})
	}
}

//GetUserProfile Returns the profile or nil when the user has none.
func GetUserProfile(ctx context.Context, client store.Storer, uid string) (*structs.UserProfile, error) {
	var p structs.UserProfile
	if err := client.Get(ctx, constants.CollectionUsers, uid, &p); err != nil {
		if store.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Transient("Error while querying Firestore", err)
	}
	return &p, nil
}

//CreateUserProfile Creates incomplete profile on signup. Existing profile is returned untouched.
func CreateUserProfile(ctx context.Context, client store.Storer, at calendar.Moment, uid string, email string, displayName string) (*structs.UserProfile, error) {
	logger := logging.FromContext(ctx).Named("profile.CreateUserProfile")

	var result *structs.UserProfile

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		existing, err := Load(tx, uid)
		if err == nil {
			logger.Debugf("Profile %v already exists", uid)
			result = existing
			return nil
		}
		if !errors.IsNotFound(err) {
			return err
		}

		p := newProfile(uid, at)
		p.Email = email
		p.DisplayName = displayName

		logger.Infof("Creating profile %v", uid)

		result = p
		return Save(tx, p, at)
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

func validatePatch(patch Patch) error {
	if patch.StepGoal != nil && *patch.StepGoal <= 0 {
		return &errors.ValidationError{Msg: "Step goal must be a positive number"}
	}

	if patch.ActivityStatus != nil {
		switch *patch.ActivityStatus {
		case structs.Sedentary, structs.ModeratelyActive, structs.VeryActive:
		default:
			return &errors.ValidationError{Msg: fmt.Sprintf("Unknown activity status '%v'", *patch.ActivityStatus)}
		}
	}

	if patch.Avatar != nil {
		switch patch.Avatar.Kind {
		case structs.AvatarDefault, structs.AvatarChrysalis:
			if patch.Avatar.URL != "" {
				return &errors.ValidationError{Msg: "Only custom avatar can have URL"}
			}
		case structs.AvatarCustom:
			if patch.Avatar.URL == "" {
				return &errors.ValidationError{Msg: "Custom avatar needs URL"}
			}
		default:
			return &errors.ValidationError{Msg: fmt.Sprintf("Unknown avatar kind '%v'", patch.Avatar.Kind)}
		}
	}

	return nil
}

//UpdateUserProfile Merges the patch into the profile, creating it when missing. Completing the
//profile for the first time counts the user as a participant.
func UpdateUserProfile(ctx context.Context, client store.Storer, at calendar.Moment, uid string, patch Patch) (*structs.UserProfile, error) {
	logger := logging.FromContext(ctx).Named("profile.UpdateUserProfile")

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var result *structs.UserProfile

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		p, err := Load(tx, uid)
		if err != nil {
			if !errors.IsNotFound(err) {
				return err
			}
			p = newProfile(uid, at)
		}

		wasComplete := p.ProfileComplete

		if patch.Email != nil {
			p.Email = *patch.Email
		}
		if patch.DisplayName != nil {
			p.DisplayName = *patch.DisplayName
		}
		if patch.ActivityStatus != nil {
			p.ActivityStatus = *patch.ActivityStatus
		}
		if patch.StepGoal != nil {
			p.StepGoal = *patch.StepGoal
		}
		if patch.Avatar != nil {
			if patch.Avatar.Kind == structs.AvatarChrysalis && p.ActiveChrysalisThemeID == "" {
				return &errors.FailedPreconditionError{Reason: errors.ReasonCoinNotCollected, Msg: "No chrysalis theme is active"}
			}
			p.Avatar = *patch.Avatar
		}
		if patch.ProfileComplete != nil {
			if *patch.ProfileComplete && p.StepGoal <= 0 {
				return &errors.ValidationError{Msg: "Step goal must be set to complete the profile"}
			}
			// completion is one-way
			p.ProfileComplete = p.ProfileComplete || *patch.ProfileComplete
		}

		var stats *structs.CommunityStats
		if !wasComplete && p.ProfileComplete {
			if stats, err = communitystats.Load(tx); err != nil {
				return err
			}
			stats.TotalParticipants++
		}

		logger.Debugf("Saving updated profile %v", uid)

		if err := Save(tx, p, at); err != nil {
			return err
		}
		if stats != nil {
			logger.Infof("Profile %v completed, %v participants now", uid, stats.TotalParticipants)
			if err := communitystats.Save(tx, stats); err != nil {
				return err
			}
		}

		result = p
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}
