package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tecz/grid-game/game/engine"
	"github.com/tecz/grid-game/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// GetMCPServer returns the underlying MCP server
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Grid Maze Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Grid Maze Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Reach the End tile in the last column before your health or moves run out.
You start on the Start tile in column 0 with 200 health and 450 moves.

TILE EFFECTS (applied when you land):
- Blank: -1 move
- Speeder: -5 health
- Mud: -10 health, -5 moves
- Lava: -50 health, -10 moves
- Start/End: no effect

AVAILABLE TOOLS:
- create_game: Create a new game (optional config_id)
- game_state: Get the current state and a board map
- move: Single move (up/down/left/right)
- winning_path: Check whether the end is still reachable from here
- list_games: List all games
- list_configs: List available board profiles
- game_instructions: Full rules reference

TIP: check winning_path after costly moves - the game is lost the moment
either budget hits zero, and losses are not reversible.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new game with an optional board profile",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Board profile to use (optional)",
				},
			},
		},
	}, c.handleCreateGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state with a board map",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID to inspect",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the player one step (up/down/left/right)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID to move in",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"description": "One of: up, down, left, right",
				},
			},
			Required: []string{"game_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "winning_path",
		Description: "Check whether the end is still reachable with the current budget",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID to check",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleWinningPath)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board profiles",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete game rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// apiCall makes an HTTP request to the REST API and decodes the response
func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Domain errors ship as 200 with an error body; surface them either way
	var errResp map[string]interface{}
	if json.Unmarshal(data, &errResp) == nil {
		if msg, ok := errResp["error"].(string); ok {
			return fmt.Errorf("%s", msg)
		}
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.Unmarshal(data, result)
	}

	return nil
}

// Tool Handlers

func (c *Client) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]interface{}{}
	if configID != "" {
		body["config_id"] = configID
	}

	var created service.CreatedGame
	if err := c.apiCall("POST", "/games", body, &created); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var snapshot service.GameSnapshot
	if err := c.apiCall("GET", fmt.Sprintf("/games/%s", created.GameID), nil, &snapshot); err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("Game created: %s", created.GameID)), nil
	}

	result := fmt.Sprintf("Game created: %s\n\n%s", created.GameID, formatSnapshot(&snapshot))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                    `json:"count"`
		Games []*service.GameSummary `json:"games"`
	}
	if err := c.apiCall("GET", "/games", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No games yet. Use create_game to start one."), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Active games: %d\n\n", response.Count))
	for _, game := range response.Games {
		result.WriteString(fmt.Sprintf("• game %s (%s) health=%d moves=%d last accessed %s\n",
			game.GameID, game.ConfigName, game.Health, game.Moves,
			game.LastAccessedAt.Format(time.RFC3339)))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var snapshot service.GameSnapshot
	if err := c.apiCall("GET", fmt.Sprintf("/games/%s", gameID), nil, &snapshot); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(&snapshot)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)
	direction, _ := args["direction"].(string)

	body := map[string]interface{}{"direction": direction}

	var outcome map[string]interface{}
	if err := c.apiCall("POST", fmt.Sprintf("/games/%s/move", gameID), body, &outcome); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	message, _ := outcome["message"].(string)
	data, _ := json.MarshalIndent(outcome, "", "  ")
	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", message, data)), nil
}

func (c *Client) handleWinningPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var result service.WinningPathResult
	if err := c.apiCall("GET", fmt.Sprintf("/games/%s/winning_path", gameID), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.WinningPathExists {
		return mcp.NewToolResultText("A winning path still exists from the current position."), nil
	}
	return mcp.NewToolResultText("No winning path exists from the current position and budget."), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall("GET", "/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result strings.Builder
	result.WriteString("Available Board Profiles:\n\n")
	for _, config := range configs {
		result.WriteString(fmt.Sprintf("• %s (%s)\n  %s\n  Board: %dx%d, Health: %d, Moves: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Rows, config.Cols, config.StartingHealth, config.StartingMoves))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Grid Maze Game - Complete Instructions

GAME OBJECTIVE:
Navigate from the Start tile (column 0) to the End tile (last column)
before either your health or your moves budget is exhausted.

MOVEMENT:
• Directions: up, down, left, right
• Moving off a board edge is a no-op step on that axis - you stay in place
  but still land on your current tile and pay its cost
• There are no walls; every tile is passable

TILE EFFECTS (paid when you land):
• Blank   - costs 1 move
• Speeder - costs 5 health, moves are free
• Mud     - costs 10 health and 5 moves
• Lava    - costs 50 health and 10 moves
• Start/End - free

BOARD MAP LEGEND (game_state tool):
• @ - your current position
• . - Blank
• S - Speeder
• L - Lava
• M - Mud
• A - Start
• E - End

WIN/LOSS:
• You win the moment you land on the End tile
• You lose the moment health or moves reaches zero or below - even if the
  same move also reached the End tile (loss takes priority)

STRATEGY:
• Lava costs 10x the health of a Speeder; route around lava clusters
• Blanks only cost moves - with 450 moves you can afford long detours
• Use winning_path to confirm the end is still reachable before committing
  to a risky corridor`

	return mcp.NewToolResultText(instructions), nil
}

// formatSnapshot renders a game snapshot with a character board map
func formatSnapshot(snapshot *service.GameSnapshot) string {
	if snapshot == nil {
		return "No game state available"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Position: (%d,%d) | Health: %d | Moves: %d",
		snapshot.PlayerPosition.Row, snapshot.PlayerPosition.Col,
		snapshot.Health, snapshot.Moves))
	if snapshot.EndPosition != nil {
		result.WriteString(fmt.Sprintf(" | End: (%d,%d)",
			snapshot.EndPosition.Row, snapshot.EndPosition.Col))
	}
	result.WriteString("\n\n")

	for i, row := range snapshot.Board {
		for j, tile := range row {
			if i == snapshot.PlayerPosition.Row && j == snapshot.PlayerPosition.Col {
				result.WriteString("@")
				continue
			}
			result.WriteString(tileChar(tile))
		}
		result.WriteString("\n")
	}

	return result.String()
}

func tileChar(tile engine.TileKind) string {
	switch tile {
	case engine.Blank:
		return "."
	case engine.Speeder:
		return "S"
	case engine.Lava:
		return "L"
	case engine.Mud:
		return "M"
	case engine.Start:
		return "A"
	case engine.End:
		return "E"
	default:
		return "?"
	}
}
