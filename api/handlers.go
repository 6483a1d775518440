package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var errNoQuery = errors.New("must provide query string")

type graphqlParams struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// the variables member may arrive as an object or as a JSON-encoded string
type rawParams struct {
	Query         string          `json:"query"`
	OperationName string          `json:"operationName"`
	Variables     json.RawMessage `json:"variables"`
}

type errorBody struct {
	Errors []errorEntry `json:"errors"`
}

type errorEntry struct {
	Message string `json:"message"`
}

// GraphQLHandler executes GraphQL requests received over GET or POST.
type GraphQLHandler struct {
	schema *graphql.Schema
	log    *zap.Logger
}

func NewGraphQLHandler(schema *graphql.Schema, log *zap.Logger) *GraphQLHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &GraphQLHandler{schema: schema, log: log}
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := parseRequest(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if params.Query == "" {
		writeError(w, http.StatusBadRequest, errNoQuery)
		return
	}

	response := h.schema.Exec(r.Context(), params.Query, params.OperationName, params.Variables)
	if len(response.Errors) > 0 {
		h.log.Debug("graphql query returned errors",
			zap.String("operationName", params.OperationName),
			zap.Int("errors", len(response.Errors)),
			zap.String("first", response.Errors[0].Message),
		)
	}

	writeJSON(w, http.StatusOK, response)
}

func parseRequest(w http.ResponseWriter, r *http.Request) (graphqlParams, error) {
	params, err := paramsFromQuery(r.URL.Query())
	if err != nil {
		return params, err
	}
	if r.Method != http.MethodPost {
		return params, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return params, fmt.Errorf("read request body: %w", err)
	}
	if len(body) == 0 {
		return params, nil
	}

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/graphql" {
		params.Query = string(body)
		return params, nil
	}

	var raw rawParams
	if err := json.Unmarshal(body, &raw); err != nil {
		if ct == "application/json" {
			return params, fmt.Errorf("invalid JSON body: %w", err)
		}
		params.Query = string(body)
		return params, nil
	}
	if raw.Query != "" {
		params.Query = raw.Query
	}
	if raw.OperationName != "" {
		params.OperationName = raw.OperationName
	}
	if len(raw.Variables) > 0 {
		vars, err := decodeVariables(raw.Variables)
		if err != nil {
			return params, err
		}
		params.Variables = vars
	}
	return params, nil
}

func paramsFromQuery(q url.Values) (graphqlParams, error) {
	params := graphqlParams{
		Query:         q.Get("query"),
		OperationName: q.Get("operationName"),
	}
	if v := q.Get("variables"); v != "" {
		vars, err := decodeVariables(json.RawMessage(v))
		if err != nil {
			return params, err
		}
		params.Variables = vars
	}
	return params, nil
}

func decodeVariables(raw json.RawMessage) (map[string]interface{}, error) {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return nil, nil
		}
		raw = json.RawMessage(encoded)
	}
	var vars map[string]interface{}
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil, fmt.Errorf("variables are invalid JSON: %w", err)
	}
	return vars, nil
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorBody{Errors: []errorEntry{{Message: err.Error()}}})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
