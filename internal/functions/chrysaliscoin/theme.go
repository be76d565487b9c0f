package chrysaliscoin

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/butterflysteps/backend/internal/calendar"
	"github.com/butterflysteps/backend/internal/chrysalis"
	"github.com/butterflysteps/backend/internal/environment"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/functions/profile"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/store"
	"github.com/butterflysteps/backend/internal/utils/errors"
	httputils "github.com/butterflysteps/backend/internal/utils/http"
	v1 "github.com/butterflysteps/backend/pkg/api/v1"
)

//SetActiveChrysalisTheme Handler
func SetActiveChrysalisTheme(w http.ResponseWriter, r *http.Request) {
	ThemeHandler(environment.Default(r.Context()))(w, r)
}

//ThemeHandler Builds SetActiveChrysalisTheme handler over given environment.
func ThemeHandler(env *environment.Environment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()
		logger := logging.FromContext(ctx).Named("set-active-chrysalis-theme")

		var request v1.SetActiveChrysalisThemeRequest

		if !httputils.DecodeJSONOrReportError(w, r, &request) {
			return
		}

		uid, err := env.Authenticate(ctx, request.IDToken)
		if err != nil {
			httputils.SendErrorResponse(w, r, err)
			return
		}

		p, err := SetActiveTheme(ctx, env.Store, env.Moment(), uid, request.VariantID)
		if err != nil {
			logger.Debugf("Cannot set theme: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		httputils.SendResponse(w, r, v1.UserProfileResponse{Profile: p})
	}
}

//SetActiveTheme Activates theme of a collected coin and shows it as the avatar. Empty variantID
//switches back to the default avatar.
func SetActiveTheme(ctx context.Context, client store.Storer, at calendar.Moment, uid string, variantID string) (*structs.UserProfile, error) {
	logger := logging.FromContext(ctx).Named("chrysaliscoin.SetActiveTheme")

	var variant chrysalis.Variant
	if variantID != "" {
		var ok bool
		if variant, ok = chrysalis.ByID(variantID); !ok {
			return nil, &errors.NotFoundError{Msg: fmt.Sprintf("Chrysalis variant %v not found", variantID)}
		}
	}

	var result *structs.UserProfile

	err := client.RunTransaction(ctx, func(ctx context.Context, tx store.Tx) error {
		p, err := profile.Load(tx, uid)
		if err != nil {
			return err
		}

		if variantID == "" {
			p.ActiveChrysalisThemeID = ""
			if p.Avatar.Kind == structs.AvatarChrysalis {
				p.Avatar = structs.Avatar{Kind: structs.AvatarDefault}
			}
		} else {
			date := calendar.DateFromDayNumber(variant.DayNumber)
			if !slices.Contains(p.ChrysalisCoinDates, date) {
				return &errors.FailedPreconditionError{
					Reason: errors.ReasonCoinNotCollected,
					Msg:    fmt.Sprintf("Coin of %v was not collected", date),
				}
			}

			p.ActiveChrysalisThemeID = variant.ID
			p.Avatar = structs.Avatar{Kind: structs.AvatarChrysalis}
		}

		logger.Debugf("Setting theme of %v to '%v'", uid, variantID)

		result = p
		return profile.Save(tx, p, at)
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}
