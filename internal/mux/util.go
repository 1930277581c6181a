package mux

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/cZR2911/jilaoda-poker/pkg/account"
	"github.com/cZR2911/jilaoda-poker/pkg/holdem"
	"github.com/cZR2911/jilaoda-poker/pkg/room"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// if err is sql.ErrNoRows, treat as 404, otherwise treat as a 500
func writeMaybeNotFoundError(w http.ResponseWriter, err error) {
	if err == sql.ErrNoRows {
		writeJSONError(w, http.StatusNotFound, nil)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

// writeGameError maps engine and room rejections onto 4xx responses.
// Illegal actions are recoverable user errors, not server faults.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, holdem.ErrNotYourTurn),
		errors.Is(err, holdem.ErrNoBettingRound),
		errors.Is(err, holdem.ErrCheckFacingBet),
		errors.Is(err, holdem.ErrRaiseTooSmall),
		errors.Is(err, holdem.ErrInsufficientStack),
		errors.Is(err, room.ErrNoHand),
		errors.Is(err, room.ErrHandInProgress),
		errors.Is(err, room.ErrRoomFull):
		writeJSONError(w, http.StatusConflict, err)
	case errors.Is(err, room.ErrNotSeated):
		writeJSONError(w, http.StatusForbidden, err)
	case errors.Is(err, room.ErrRoomClosed):
		writeJSONError(w, http.StatusGone, err)
	default:
		var userError account.UserError
		if errors.As(err, &userError) {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
