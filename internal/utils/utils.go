package utils

import (
	"math/rand"
	"sync"
	"time"

	"gopkg.in/go-playground/validator.v9"
)

//SeededRand Seeded random
var SeededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

var randMu sync.Mutex

//Validate -_-
var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

const teamCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

//GenerateTeamCode generates new team join code
func GenerateTeamCode() string {
	// TXXXXXX, X = letter or digit without the easily confused ones (I, O, 0, 1)
	b := make([]byte, 7)
	b[0] = 'T'

	randMu.Lock()
	defer randMu.Unlock()

	for i := 1; i < len(b); i++ {
		b[i] = teamCodeAlphabet[SeededRand.Intn(len(teamCodeAlphabet))]
	}

	return string(b)
}

//Clock Source of current time; replaced in tests.
type Clock func() time.Time

//SystemClock Real wall clock.
func SystemClock() time.Time {
	return time.Now()
}

//FixedClock Clock always returning t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
