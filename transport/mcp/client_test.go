package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tecz/grid-game/game/engine"
	"github.com/tecz/grid-game/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"game_id": "0",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("POST", "/games", map[string]string{}, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["game_id"] != "0" {
		t.Errorf("Expected game_id '0', got %v", response["game_id"])
	}
}

func TestClient_apiCall_ConnectionError(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/games", nil, nil)
	if err == nil {
		t.Error("Expected error for unreachable server")
	}
}

func TestClient_apiCall_SoftError(t *testing.T) {
	// Domain errors arrive as HTTP 200 with an error body; apiCall must
	// surface them as errors anyway.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error": "Game not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/games/999", nil, nil)
	if err == nil {
		t.Fatal("Expected error for soft-error body")
	}
	if err.Error() != "Game not found" {
		t.Errorf("Expected 'Game not found', got %q", err.Error())
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/games", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}
}

func TestFormatSnapshot(t *testing.T) {
	board := engine.Board{
		{engine.Start, engine.Blank, engine.Lava},
		{engine.Mud, engine.Speeder, engine.End},
	}
	end := engine.Position{Row: 1, Col: 2}

	snapshot := &service.GameSnapshot{
		PlayerPosition: engine.Position{Row: 0, Col: 1},
		Board:          board,
		Health:         180,
		Moves:          440,
		EndPosition:    &end,
	}

	result := formatSnapshot(snapshot)

	if !strings.Contains(result, "Position: (0,1)") {
		t.Errorf("Expected position in output, got:\n%s", result)
	}
	if !strings.Contains(result, "Health: 180") {
		t.Errorf("Expected health in output, got:\n%s", result)
	}
	if !strings.Contains(result, "End: (1,2)") {
		t.Errorf("Expected end position in output, got:\n%s", result)
	}

	// The player marker replaces the tile char at the player's cell
	if !strings.Contains(result, "A@L") {
		t.Errorf("Expected board row 'A@L', got:\n%s", result)
	}
	if !strings.Contains(result, "MSE") {
		t.Errorf("Expected board row 'MSE', got:\n%s", result)
	}
}

func TestFormatSnapshot_Nil(t *testing.T) {
	if got := formatSnapshot(nil); got != "No game state available" {
		t.Errorf("Unexpected nil-snapshot output: %q", got)
	}
}

func TestTileChar(t *testing.T) {
	tests := []struct {
		tile     engine.TileKind
		expected string
	}{
		{engine.Blank, "."},
		{engine.Speeder, "S"},
		{engine.Lava, "L"},
		{engine.Mud, "M"},
		{engine.Start, "A"},
		{engine.End, "E"},
		{engine.TileKind("Unknown"), "?"},
	}

	for _, test := range tests {
		if got := tileChar(test.tile); got != test.expected {
			t.Errorf("tileChar(%s) = %q, expected %q", test.tile, got, test.expected)
		}
	}
}
