package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/soccerfront/internal/relay"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEnvelope answers with the envelope, using its Code as HTTP status.
func writeEnvelope(w http.ResponseWriter, env relay.Envelope) {
	writeJSON(w, env.Code, env)
}

// writeRaw answers 200 with a body that is already JSON.
func writeRaw(w http.ResponseWriter, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// okEnvelope wraps data in a 200 envelope.
func okEnvelope(data any) (relay.Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return relay.Envelope{}, err
	}
	return relay.Envelope{Code: http.StatusOK, Message: "ok", Data: raw}, nil
}
