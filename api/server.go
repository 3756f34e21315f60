package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tecz/grid-game/game/engine"
	"github.com/tecz/grid-game/game/registry"
	"github.com/tecz/grid-game/game/service"
	"github.com/tecz/grid-game/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Game lifecycle
	s.router.HandleFunc("/games", s.handleCreateGame).Methods("POST")
	s.router.HandleFunc("/games", s.handleListGames).Methods("GET")
	s.router.HandleFunc("/games/{id}", s.handleGetGame).Methods("GET")

	// Game operations
	s.router.HandleFunc("/games/{id}/move", s.handleMove).Methods("POST")
	s.router.HandleFunc("/games/{id}/winning_path", s.handleWinningPath).Methods("GET")

	// Configuration
	s.router.HandleFunc("/configs", s.handleListConfigs).Methods("GET")

	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondGameError maps the two domain errors onto their soft response
// bodies. Clients predate proper status codes and match on the body text,
// so both ship as 200 with an error field; anything else is a real 500.
func respondGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrGameNotFound):
		respondJSON(w, http.StatusOK, map[string]string{"error": "Game not found"})
	case errors.Is(err, engine.ErrInvalidDirection):
		respondJSON(w, http.StatusOK, map[string]string{"error": "Invalid move"})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// Game Handlers

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfigID string `json:"config_id,omitempty"`
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	created, err := s.service.CreateGame(r.Context(), req.ConfigID)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.service.ListGames(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(games),
		"games": games,
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	snapshot, err := s.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	var req struct {
		Direction string `json:"direction"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	result, err := s.service.Move(r.Context(), gameID, req.Direction)
	if err != nil {
		respondGameError(w, err)
		return
	}

	// Broadcast the post-move snapshot to WebSocket clients
	if s.hub != nil {
		if snapshot, err := s.service.GetGame(r.Context(), gameID); err == nil {
			s.hub.BroadcastToGame(gameID, snapshot)
		}
	}

	// Compact server log for observability
	switch {
	case result.Lost != nil:
		o := result.Lost
		log.Printf("[MOVE] game=%s %s -> (%d,%d) tile=%s LOST",
			gameID, req.Direction, o.NewPosition.Row, o.NewPosition.Col, o.TileType)
	case result.Won != nil:
		o := result.Won
		log.Printf("[MOVE] game=%s %s -> (%d,%d) tile=%s WON",
			gameID, req.Direction, o.NewPosition.Row, o.NewPosition.Col, o.TileType)
	default:
		o := result.Continuing
		log.Printf("[MOVE] game=%s %s -> (%d,%d) tile=%s health=%d moves=%d",
			gameID, req.Direction, o.NewPosition.Row, o.NewPosition.Col, o.TileType,
			o.RemainingHealth, o.RemainingMoves)
	}

	respondJSON(w, http.StatusOK, result.Body())
}

func (s *Server) handleWinningPath(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	result, err := s.service.WinningPath(r.Context(), gameID)
	if err != nil {
		respondGameError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Configuration Handlers

func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.service.ListConfigs(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "game parameter required", http.StatusBadRequest)
		return
	}

	// Verify game exists
	_, err := s.service.GetGame(context.Background(), gameID)
	if err != nil {
		http.Error(w, "Invalid game", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, gameID)
}

// Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
