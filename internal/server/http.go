package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/karupanerura/configlang/internal/interpreter"
	"github.com/karupanerura/configlang/internal/types"
	"github.com/mitchellh/mapstructure"
)

const evaluatePath = "/v1/evaluate"

type evaluateRequest struct {
	Source    string           `mapstructure:"source"`
	Constants map[string]int64 `mapstructure:"constants"`
}

type evaluateResponse struct {
	Result    any              `json:"result"`
	Constants map[string]int64 `json:"constants"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Exception any    `json:"exception,omitempty"`
}

type httpHandler struct {
	predefined *types.ConstantTable
	debug      bool
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != evaluatePath {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.evaluate(w, r)
		return

	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
}

func (h *httpHandler) evaluate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeEvaluateRequest(r.Body)
	if err != nil {
		log.Printf("failed to decode request body: %v", err)
		writeJSON(w, http.StatusBadRequest, &errorResponse{Error: err.Error()})
		return
	}

	requestConstants := types.NewConstantTableWithParent(h.predefined)
	for name, value := range req.Constants {
		if !interpreter.IsValidConstantName(name) {
			writeJSON(w, http.StatusBadRequest, &errorResponse{Error: fmt.Sprintf("invalid constant name: %q", name)})
			return
		}
		requestConstants.Set(name, value)
	}

	in := interpreter.NewWithPredefined(requestConstants)
	in.Debug = h.debug
	ret, err := in.Parse(req.Source)
	if err != nil {
		res := &errorResponse{Error: err.Error()}
		var exception types.Exception
		if errors.As(err, &exception) {
			res.Exception = exception.Exception()
		}
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}

	writeJSON(w, http.StatusOK, &evaluateResponse{
		Result:    ret.Value(),
		Constants: in.Constants().Flatten(),
	})
}

func decodeEvaluateRequest(r io.Reader) (*evaluateRequest, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	var req evaluateRequest
	md, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &req,
	})
	if err != nil {
		return nil, fmt.Errorf("mapstructure.NewDecoder: %w", err)
	}
	if err := md.Decode(raw); err != nil {
		return nil, fmt.Errorf("mapstructure.Decode: %w", err)
	}
	return &req, nil
}

// NewHTTPHandler serves POST /v1/evaluate. Every request is parsed by its
// own interpreter, seeded with predefined and the request's constants.
func NewHTTPHandler(predefined *types.ConstantTable, debug bool) http.Handler {
	if predefined == nil {
		predefined = types.NewConstantTable()
	}
	return &httpHandler{predefined: predefined, debug: debug}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if err := resJSON(w, status, v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func resJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)+1))
	w.WriteHeader(status)

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
