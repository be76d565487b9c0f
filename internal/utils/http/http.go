package http

import (
	"encoding/json"
	ers "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/butterflysteps/backend/internal/logging"
	"github.com/butterflysteps/backend/internal/utils"
	"github.com/butterflysteps/backend/internal/utils/errors"
	"github.com/golang/gddo/httputil/header"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

const maxBodyBytes = 1048576

type requestEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type responseEnvelope struct {
	Data interface{} `json:"data"`
}

type errorBody struct {
	Status  rpccode.Code `json:"status"`
	Message string       `json:"message"`
	Reason  string       `json:"reason,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func malformed(msg string) error {
	return &errors.MalformedRequestError{Status: rpccode.Code_INVALID_ARGUMENT, Msg: msg}
}

// DecodeJSONBody decodes callable-style `{"data": {...}}` body into dst and validates it.
// Based on https://www.alexedwards.net/blog/how-to-properly-parse-a-json-request-body
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	value, _ := header.ParseValueAndParams(r.Header, "Content-Type")
	if value != "application/json" {
		return malformed("Content-Type header is not application/json")
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var envelope requestEnvelope
	if err := describeDecodeError(dec.Decode(&envelope)); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return malformed("Request body must only contain a single JSON object")
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return malformed("Request body must be wrapped in 'data' field")
	}

	inner := json.NewDecoder(strings.NewReader(string(envelope.Data)))
	inner.DisallowUnknownFields()
	if err := describeDecodeError(inner.Decode(dst)); err != nil {
		return err
	}

	if err := utils.Validate.Struct(dst); err != nil {
		return malformed(fmt.Sprintf("Validation of the request has failed: %v", err.Error()))
	}

	return nil
}

func describeDecodeError(err error) error {
	if err == nil {
		return nil
	}

	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError

	switch {
	case ers.As(err, &syntaxError):
		return malformed(fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset))

	case ers.Is(err, io.ErrUnexpectedEOF):
		return malformed("Request body contains badly-formed JSON")

	case ers.As(err, &unmarshalTypeError):
		return malformed(fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset))

	case strings.HasPrefix(err.Error(), "json: unknown field "):
		fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
		return malformed(fmt.Sprintf("Request body contains unknown field %s", fieldName))

	case ers.Is(err, io.EOF):
		return malformed("Request body must not be empty")

	case err.Error() == "http: request body too large":
		return malformed("Request body must not be larger than 1MB")

	default:
		return err
	}
}

//DecodeJSONOrReportError Decodes the request; on failure writes the error response and returns false.
func DecodeJSONOrReportError(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		logging.FromContext(r.Context()).Debugf("Could not decode request: %v", err)
		SendErrorResponse(w, r, err)
		return false
	}
	return true
}

//SendResponse Sends `{"data": payload}`.
func SendResponse(w http.ResponseWriter, r *http.Request, payload interface{}) {
	writeJSON(w, r, responseEnvelope{Data: payload})
}

//SendEmptyResponse Sends `{"data": {}}`.
func SendEmptyResponse(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, responseEnvelope{Data: struct{}{}})
}

//SendErrorResponse Sends `{"error": {"status": code, "message": msg, "reason": reason}}`. Untyped errors are INTERNAL.
func SendErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{Status: errors.CodeOf(err), Message: err.Error()}

	var conflict *errors.ConflictError
	var precondition *errors.FailedPreconditionError
	switch {
	case ers.As(err, &conflict):
		body.Reason = conflict.Reason
	case ers.As(err, &precondition):
		body.Reason = precondition.Reason
	}

	writeJSON(w, r, errorEnvelope{Error: body})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		logging.FromContext(r.Context()).Errorf("Could not encode response: %v", err)
		http.Error(w, "Could not encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(bytes); err != nil {
		logging.FromContext(r.Context()).Warnf("Could not write response: %v", err)
	}
}
