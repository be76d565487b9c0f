package submitsteps

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

//HandleAftermath Adds submitted steps to the live counters of the day and the whole challenge.
func HandleAftermath(ctx context.Context, client realtimedb.RealtimeDB, m pubsub.Message) error {
	logger := logging.FromContext(ctx).Named("steps-aftermath")

	var payload SubmittedEvent

	decodeErr := pubsub.DecodeJSONEvent(m, &payload)
	if decodeErr != nil {
		return fmt.Errorf("Error while parsing event payload: %v", decodeErr)
	}

	logger.Debugf("Doing steps aftermath for %v: %v steps on %v", payload.UID, payload.Steps, payload.Date)

	for _, key := range []string{constants.DbStepCountersPrefix + payload.Date, constants.DbStepCountersPrefix + "total"} {
		if err := updateCounter(ctx, client, key, payload.Steps); err != nil {
			logger.Warnf("Cannot handle steps aftermath due to unknown error: %+v", err.Error())
			return err
		}
	}

	return nil
}

func updateCounter(ctx context.Context, client realtimedb.RealtimeDB, key string, steps int) error {
	logger := logging.FromContext(ctx)

	return client.RunTransaction(ctx, key, func(tn db.TransactionNode) (interface{}, error) {
		var state structs.StepCounter

		if err := tn.Unmarshal(&state); err != nil {
			return nil, err
		}

		state.Steps += int64(steps)
		state.Submissions++

		logger.Debugf("Saving updated counter state, key %v: %+v", key, state)

		return state, nil
	})
}
