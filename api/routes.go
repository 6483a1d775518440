package api

import (
	"net/http"

	"driver-graphql-api/metrics"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

type Deps struct {
	Schema  *graphql.Schema
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// Path is where the GraphQL endpoint is mounted. Defaults to /graphql.
	Path string
}

func RegisterRoutes(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New(deps.Logger)
	}
	if deps.Path == "" {
		deps.Path = "/graphql"
	}

	router := mux.NewRouter()

	// GraphQL endpoint
	router.Handle(deps.Path, NewGraphQLHandler(deps.Schema, deps.Logger)).Methods("GET", "POST")

	// Operational endpoints
	router.HandleFunc("/healthz", HealthHandler).Methods("GET")
	router.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{deps.Logger.Sugar()}),
	)

	return recovery(cors(deps.Metrics.Instrument(router)))
}

type recoveryLogger struct {
	log *zap.SugaredLogger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error(v...)
}
