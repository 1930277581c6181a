package mux

import (
	"context"
	"net/http"
	"strings"
	"time"

	gmux "github.com/gorilla/mux"

	"github.com/cZR2911/jilaoda-poker/internal/config"
	"github.com/cZR2911/jilaoda-poker/internal/jwt"
	"github.com/cZR2911/jilaoda-poker/pkg/account"
	"github.com/cZR2911/jilaoda-poker/pkg/room"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxRoomKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	rooms   *room.Manager

	// stored for testing purposes
	authRouter  *gmux.Router
	adminRouter *gmux.Router
}

// accountSaver bridges the room package's persistence seam onto pkg/account
type accountSaver struct{}

// SaveChips persists the player's chips at hand end
func (accountSaver) SaveChips(ctx context.Context, playerID int64, chips int) error {
	player, err := account.GetPlayerByID(ctx, playerID)
	if err != nil {
		return err
	}

	return player.UpdateChips(ctx, chips)
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	manager := room.NewManager(room.Options{
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
		OpponentDelay: time.Duration(cfg.OpponentActDelayMS) * time.Millisecond,
	}, accountSaver{}, cfg.StartingChips)

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		rooms:   manager,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	this.adminRouter = this.Router.NewRoute().Subrouter()

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/login").Handler(this.postLogin())
	}

	// guarded by the admin key rather than a bearer token; the legacy
	// account service worked this way and operator tooling depends on it
	{
		r := this.adminRouter
		r.Methods(http.MethodPost).Path("/admin/reset_password").Handler(this.postAdminResetPassword())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodPost).Path("/update_score").Handler(this.postUpdateScore())
		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

		rr := r.PathPrefix("/room/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		rr.Use(this.roomMiddleware)

		rr.Methods(http.MethodPost).Path("/join").Handler(this.postRoomJoin())
		rr.Methods(http.MethodPost).Path("/deal").Handler(this.postRoomDeal())
		rr.Methods(http.MethodPost).Path("/action").Handler(this.postRoomAction())
		rr.Methods(http.MethodGet).Path("/state").Handler(this.getRoomState())
		rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomWS())
		rr.Methods(http.MethodDelete).Path("").Handler(this.deleteRoom())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidPlayerID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		player, err := account.GetPlayerByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxPlayerKey, player)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		rm, ok := m.rooms.GetRoom(uuid)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxRoomKey, rm)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func playerFromContext(r *http.Request) *account.Player {
	return r.Context().Value(ctxPlayerKey).(*account.Player)
}

func roomFromContext(r *http.Request) *room.Room {
	return r.Context().Value(ctxRoomKey).(*room.Room)
}
