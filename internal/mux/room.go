package mux

import (
	"net/http"

	"github.com/cZR2911/jilaoda-poker/internal/util"
	"github.com/cZR2911/jilaoda-poker/pkg/holdem"
)

type createRoomPayload struct {
	Name string `json:"name"`

	// WithoutBot leaves the scripted opponent out for player-vs-player rooms
	WithoutBot bool `json:"without_bot"`
}

type roomResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cp createRoomPayload
		if !decodeRequest(w, r, &cp) {
			return
		}

		name := cp.Name
		if name == "" {
			name = util.RandomRoomName()
		}

		rm, err := m.rooms.CreateRoom(name, !cp.WithoutBot)
		if err != nil {
			writeGameError(w, err)
			return
		}

		player := playerFromContext(r)
		if err := rm.Join(player.ID, player.Username, player.Chips); err != nil {
			m.rooms.CloseRoom(rm.UUID)
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomResponse{
			UUID: rm.UUID,
			Name: rm.Name,
		})
	}
}

func (m *Mux) postRoomJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := playerFromContext(r)
		rm := roomFromContext(r)

		if err := rm.Join(player.ID, player.Username, player.Chips); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK)
	}
}

func (m *Mux) postRoomDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := roomFromContext(r)

		if err := rm.Deal(); err != nil {
			writeGameError(w, err)
			return
		}

		player := playerFromContext(r)
		snapshot, err := rm.State(player.ID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

type actionPayload struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

func (m *Mux) postRoomAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ap actionPayload
		if !decodeRequest(w, r, &ap) {
			return
		}

		act, err := holdem.ActionFromString(ap.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		player := playerFromContext(r)
		rm := roomFromContext(r)

		if err := rm.Action(player.ID, act, ap.Amount); err != nil {
			writeGameError(w, err)
			return
		}

		snapshot, err := rm.State(player.ID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

// getRoomState is the polling endpoint: an idempotent snapshot of the hand
// from the caller's point of view
func (m *Mux) getRoomState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := playerFromContext(r)
		rm := roomFromContext(r)

		snapshot, err := rm.State(player.ID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

func (m *Mux) deleteRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := playerFromContext(r)
		if !player.IsSiteAdmin {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		rm := roomFromContext(r)
		m.rooms.CloseRoom(rm.UUID)

		writeJSON(w, http.StatusOK, statusOK)
	}
}
