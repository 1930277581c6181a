package mux

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/cZR2911/jilaoda-poker/internal/config"
	"github.com/cZR2911/jilaoda-poker/internal/jwt"
	"github.com/cZR2911/jilaoda-poker/pkg/account"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Player    *account.Player `json:"player"`
	Chips     int             `json:"chips"`
	AuthToken string          `json:"authToken"`
}

var validUsernameRx = regexp.MustCompile(`^[\p{L}\p{N}_]{1,32}\z`)

var statusOK = map[string]string{
	"status": "OK",
}

// postLogin authenticates a player, auto-registering unknown usernames with
// the configured starting chips
func (m *Mux) postLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lp loginPayload
		if !decodeRequest(w, r, &lp) {
			return
		}

		if !validUsernameRx.MatchString(lp.Username) {
			writeJSONError(w, http.StatusBadRequest, errors.New("username must only contain letters, numbers, and underscores, and be 32 characters or less"))
			return
		}

		if lp.Password == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("password is required"))
			return
		}

		player, err := account.Login(r.Context(), lp.Username, lp.Password, config.Instance().StartingChips)
		if err != nil {
			if err == account.ErrInvalidUsernameOrPassword {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		signed, err := jwt.Sign(player.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Player:    player,
			Chips:     player.Chips,
			AuthToken: signed,
		})
	}
}

type updateScorePayload struct {
	Chips int `json:"chips"`
}

// postUpdateScore persists a new chip balance for the authenticated player
func (m *Mux) postUpdateScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var up updateScorePayload
		if !decodeRequest(w, r, &up) {
			return
		}

		if up.Chips < 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("chips cannot be negative"))
			return
		}

		player := playerFromContext(r)
		if err := player.UpdateChips(r.Context(), up.Chips); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK)
	}
}

type adminResetPayload struct {
	AdminKey       string `json:"admin_key"`
	TargetUsername string `json:"target_username"`
	NewPassword    string `json:"new_password"`
}

// postAdminResetPassword resets a player's password, guarded by the
// configured admin key
func (m *Mux) postAdminResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rp adminResetPayload
		if !decodeRequest(w, r, &rp) {
			return
		}

		adminKey := config.Instance().AdminKey
		if adminKey == "" || rp.AdminKey != adminKey {
			writeJSONError(w, http.StatusForbidden, errors.New("invalid admin key"))
			return
		}

		if rp.NewPassword == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("new password is required"))
			return
		}

		if err := account.ResetPassword(r.Context(), rp.TargetUsername, rp.NewPassword); err != nil {
			if err == account.ErrPlayerNotFound {
				writeJSONError(w, http.StatusNotFound, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK)
	}
}
