package server

import (
	"encoding/json"
	"io"
	"net/http"
)

type InsertPost struct {
	Key   int    `json:"key"`
	Value string `json:"value"`
}

type KeyPost struct {
	Key int `json:"key"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	msg, _ := json.Marshal(body)
	w.Write(msg)
}

// readPost rejects non-POST requests and decodes the JSON body into dst.
// It reports whether the handler should proceed.
func readPost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"status": "this method is not allowed",
		})
		return false
	}

	b, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}

	if err := json.Unmarshal(b, dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) InsertHandler(w http.ResponseWriter, r *http.Request) {
	requestData := InsertPost{}
	if !readPost(w, r, &requestData) {
		return
	}

	s.store.Insert(requestData.Key, requestData.Value)

	writeJSON(w, http.StatusCreated, map[string]any{
		"key":   requestData.Key,
		"value": requestData.Value,
	})
}

func (s *Server) RetrieveHandler(w http.ResponseWriter, r *http.Request) {
	requestData := KeyPost{}
	if !readPost(w, r, &requestData) {
		return
	}

	value, found, err := s.store.Retrieve(requestData.Key)
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{
			"status": err.Error(),
		})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status": "no value found",
		})
		return
	}

	writeJSON(w, http.StatusFound, map[string]any{
		"key":   requestData.Key,
		"value": value,
	})
}

func (s *Server) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	requestData := KeyPost{}
	if !readPost(w, r, &requestData) {
		return
	}

	deleted, err := s.store.Delete(requestData.Key)
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{
			"status": err.Error(),
		})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status": "no such key",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "deleted",
	})
}

func (s *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"status": "this method is not allowed",
		})
		return
	}
	writeJSON(w, http.StatusOK, s.store.Stats())
}

func (s *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "pong",
	})
}
