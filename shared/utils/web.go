package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

// maxBodySize limits json bodies accepted by DecodePayload.
const maxBodySize = 1 << 20

// WriteJSON writes v as the "data" of a success envelope.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(api.Success(data))
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		writeEnvelope(w, http.StatusInternalServerError, api.Response{Status: api.StatusError, Message: "internal server error"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// WriteSuccess writes an envelope without data.
func WriteSuccess(w http.ResponseWriter) {
	writeEnvelope(w, http.StatusOK, api.Response{Status: api.StatusSuccess})
}

// WriteErrorAndStatusCode maps err to a status code and a fail envelope.
// default error is 500 and its text never reaches the client
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := internal_errors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		writeEnvelope(w, status, api.Response{Status: api.StatusError, Message: "internal server error"})
		return
	}
	writeEnvelope(w, status, api.Response{Status: api.StatusFail, Message: err.Error()})
}

func writeEnvelope(w http.ResponseWriter, status int, resp api.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Error("failed to write response", "error", err)
	}
}

// DecodePayload reads a json object into an untyped payload.
// Entity constructors decide what is missing or mistyped.
func DecodePayload(r io.ReadCloser) (domain.Payload, error) {
	defer r.Close()
	var payload domain.Payload
	dec := json.NewDecoder(io.LimitReader(r, maxBodySize))
	if err := dec.Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Body must be a json object", Code: http.StatusBadRequest}
		}
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", Code: http.StatusBadRequest}
	}
	if payload == nil {
		return domain.Payload{}, nil
	}
	return payload, nil
}
