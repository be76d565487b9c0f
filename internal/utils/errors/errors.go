package errors

import (
	ers "errors"

	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

//Precondition failure reasons.
const (
	ReasonAlreadyCollected      = "already_collected"
	ReasonGoalNotMet            = "goal_not_met"
	ReasonNoStepGoal            = "no_step_goal"
	ReasonOutsideChallengeDates = "outside_challenge_window"
	ReasonCoinNotCollected      = "coin_not_collected"
	ReasonAlreadyOnTeam         = "already_on_team"
	ReasonNotPending            = "challenge_not_pending"
)

//StepsError Error with code.
type StepsError interface {
	Code() rpccode.Code
	Error() string
}

//CustomError Custom error (who would guess)
type CustomError struct {
	Msg string
}

func (e *CustomError) Error() string {
	return e.Msg
}

//UnknownError Unknown error
type UnknownError struct {
	Msg string
}

func (e *UnknownError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *UnknownError) Code() rpccode.Code {
	return rpccode.Code_INTERNAL
}

//MalformedRequestError Error for malformed request
type MalformedRequestError struct {
	Status rpccode.Code
	Msg    string
}

func (mr *MalformedRequestError) Error() string {
	return mr.Msg
}

//Code Code of the error.
func (mr *MalformedRequestError) Code() rpccode.Code {
	return rpccode.Code_INVALID_ARGUMENT
}

//ValidationError Malformed input to an operation. Nothing was mutated.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *ValidationError) Code() rpccode.Code {
	return rpccode.Code_INVALID_ARGUMENT
}

//NotFoundError Referenced entity does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *NotFoundError) Code() rpccode.Code {
	return rpccode.Code_NOT_FOUND
}

//ConflictError The operation was already done (coin collected, already on a team, challenge answered).
type ConflictError struct {
	Reason string
	Msg    string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *ConflictError) Code() rpccode.Code {
	return rpccode.Code_ALREADY_EXISTS
}

//FailedPreconditionError State of the user does not allow the operation yet.
type FailedPreconditionError struct {
	Reason string
	Msg    string
}

func (e *FailedPreconditionError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *FailedPreconditionError) Code() rpccode.Code {
	return rpccode.Code_FAILED_PRECONDITION
}

//TransientError Underlying persistence or network failure; the caller may retry.
type TransientError struct {
	Msg string
	Err error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

//Code Code of the error.
func (e *TransientError) Code() rpccode.Code {
	return rpccode.Code_UNAVAILABLE
}

//UnauthenticatedError Missing or invalid ID token.
type UnauthenticatedError struct {
	Msg string
}

func (e *UnauthenticatedError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *UnauthenticatedError) Code() rpccode.Code {
	return rpccode.Code_UNAUTHENTICATED
}

//CodeOf Extracts rpc code from any error; errors without code are INTERNAL.
func CodeOf(err error) rpccode.Code {
	if err == nil {
		return rpccode.Code_OK
	}
	var se StepsError
	if ers.As(err, &se) {
		return se.Code()
	}
	return rpccode.Code_INTERNAL
}

//IsTyped Whether the error (or anything it wraps) carries its own code.
func IsTyped(err error) bool {
	var se StepsError
	return ers.As(err, &se)
}

//Transient Wraps a storage failure unless it is already typed.
func Transient(msg string, err error) error {
	if err == nil {
		return nil
	}
	if IsTyped(err) {
		return err
	}
	return &TransientError{Msg: msg, Err: err}
}

//IsNotFound Whether the error reports a missing entity.
func IsNotFound(err error) bool {
	return CodeOf(err) == rpccode.Code_NOT_FOUND
}
