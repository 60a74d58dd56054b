package mux

import (
	"database/sql"
	"net/http"

	"github.com/charmbracelet/log"
	gmux "github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"pokersim-server/internal/config"
)

// Mux handles HTTP requests for the simulation service
type Mux struct {
	*gmux.Router
	version  string
	logger   *log.Logger
	db       *sql.DB
	profile  *config.TableProfile
	upgrader websocket.Upgrader
}

// NewMux returns a new HTTP mux. db may be nil when the service runs
// without persistence; the /hand save and list endpoints then report the
// store as unavailable.
func NewMux(version string, logger *log.Logger, conn *sql.DB, profile *config.TableProfile) *Mux {
	if profile == nil {
		profile = config.DefaultTableProfile()
	}

	m := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		logger:  logger.WithPrefix("mux"),
		db:      conn,
		profile: profile,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	m.Methods(http.MethodGet).Path("/health").Handler(m.getHealth())
	m.Methods(http.MethodPost).Path("/hand/simulate").Handler(m.postHandSimulate())
	m.Methods(http.MethodGet).Path("/hand/simulate/ws").Handler(m.getHandSimulateWS())
	m.Methods(http.MethodPost).Path("/hand").Handler(m.postHand())
	m.Methods(http.MethodGet).Path("/hand").Handler(m.getHands())

	return m
}
