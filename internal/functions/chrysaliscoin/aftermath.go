package chrysaliscoin

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"
	"github.com/butterflysteps/backend/internal/constants"
	"github.com/butterflysteps/backend/internal/firebase/structs"
	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/pubsub"
	"github.com/butterflysteps/backend/internal/realtimedb"
)

// Aftermath handler
func Aftermath(ctx context.Context, m pubsub.Message) error {
	return HandleAftermath(ctx, realtimedb.Client{}, m)
}

//HandleAftermath Counts the collected coin for its date and in total.
func HandleAftermath(ctx context.Context, client realtimedb.RealtimeDB, m pubsub.Message) error {
	logger := logging.FromContext(ctx).Named("coin-aftermath")

	var payload CollectedEvent

	decodeErr := pubsub.DecodeJSONEvent(m, &payload)
	if decodeErr != nil {
		return fmt.Errorf("Error while parsing event payload: %v", decodeErr)
	}

	logger.Debugf("Doing coin aftermath for %v, date %v", payload.UID, payload.Date)

	// update daily counter
	err := updateCounter(ctx, client, constants.DbCoinCountersPrefix+payload.Date)
	if err != nil {
		logger.Warnf("Cannot handle coin aftermath due to unknown error: %+v", err.Error())
		return err
	}

	// update total counter
	err = updateCounter(ctx, client, constants.DbCoinCountersPrefix+"total")
	if err != nil {
		logger.Warnf("Cannot handle coin aftermath due to unknown error: %+v", err.Error())
		return err
	}

	return nil
}

func updateCounter(ctx context.Context, client realtimedb.RealtimeDB, key string) error {
	logger := logging.FromContext(ctx)

	return client.RunTransaction(ctx, key, func(tn db.TransactionNode) (interface{}, error) {
		var state structs.CoinCounter

		if err := tn.Unmarshal(&state); err != nil {
			return nil, err
		}

		state.CoinsCount++

		logger.Debugf("Saving updated counter state, key %v: %+v", key, state)

		return state, nil
	})
}
