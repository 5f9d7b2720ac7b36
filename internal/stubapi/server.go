package stubapi

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/five82/carlot/internal/carapi"
)

const (
	carsPath     = "/v1/cars"
	apiKeyHeader = "X-Api-Key"
	defaultLimit = 50
	maxLimit     = 50
)

// NewHTTPServer returns an HTTP server that answers /v1/cars from the
// simulated dataset. An empty apiKey disables the key check.
func NewHTTPServer(addr, apiKey string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: NewHandler(apiKey, log.New(os.Stdout, "stub-api: ", log.LstdFlags)),
	}
}

// NewHandler builds the router on its own so tests and embedders can mount it.
// A nil logger discards request logs.
func NewHandler(apiKey string, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	server := &httpServer{
		log:      logger,
		apiKey:   apiKey,
		vehicles: carapi.SimulatedVehicles,
	}
	r := mux.NewRouter()
	r.HandleFunc(carsPath, server.GetCars).Methods(http.MethodGet)
	return r
}

type httpServer struct {
	log      *log.Logger
	apiKey   string
	vehicles func() []carapi.Vehicle
}
