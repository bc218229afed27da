package lichess

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/external"
)

type challengeClock struct {
	Limit     int `json:"limit"`
	Increment int `json:"increment"`
}

type challengeRequest struct {
	Rated   bool           `json:"rated"`
	Clock   challengeClock `json:"clock"`
	Color   string         `json:"color"`
	Variant string         `json:"variant"`
	Rules   string         `json:"rules"`
}

type challengeResponse struct {
	Challenge struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"challenge"`
}

type gameExport struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Winner string `json:"winner"`
}

// GameClient creates games and reads their results
type GameClient struct {
	*api
}

var _ external.GameProvider = (*GameClient)(nil)

// NewGameClient creates a game client
func NewGameClient(config Config, logger coreport.Logger) *GameClient {
	return &GameClient{api: newAPI(config, logger)}
}

// CreateGame challenges the creator on behalf of the accepting principal. It is
// not retried: a repeated request would open a second game.
func (c *GameClient) CreateGame(ctx context.Context, principal entity.Principal, req entity.GameRequest) (entity.GameHandle, error) {
	body := challengeRequest{
		Rated:   c.config.Rated,
		Clock:   challengeClock{Limit: req.ClockLimit, Increment: req.Increment},
		Color:   string(req.Color),
		Variant: "standard",
		Rules:   "noClaimWin",
	}

	var resp challengeResponse
	path := "/api/challenge/" + url.PathEscape(req.ChallengedUsername)
	if err := c.do(ctx, http.MethodPost, path, principal.AccessToken, body, &resp); err != nil {
		return entity.GameHandle{}, errs.NewExternalServiceError(ServiceName, "create_game", unwrapPermanent(err))
	}
	if resp.Challenge.ID == "" {
		return entity.GameHandle{}, errs.NewExternalServiceError(ServiceName, "create_game",
			errors.New("response did not include a challenge id"))
	}

	c.logger.Info("Game created", map[string]any{
		"game_id":    resp.Challenge.ID,
		"challenger": principal.Username,
		"challenged": req.ChallengedUsername,
	})
	return entity.GameHandle{ID: resp.Challenge.ID, URL: resp.Challenge.URL}, nil
}

// GetGameResult exports a game. Games the service does not know yet count as created.
func (c *GameClient) GetGameResult(ctx context.Context, gameID string) (entity.GameResult, error) {
	if gameID == "" {
		return entity.GameResult{}, errs.NewValidationError("game_id", "is required")
	}

	var game gameExport
	err := c.retry(ctx, "get_game_result", func() error {
		return c.do(ctx, http.MethodGet, "/game/export/"+url.PathEscape(gameID), "", nil, &game)
	})

	var httpErr *httpError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return entity.GameResult{Status: entity.GameCreated, RawStatus: "notFound"}, nil
	}
	if err != nil {
		return entity.GameResult{}, errs.NewExternalServiceError(ServiceName, "get_game_result", err)
	}

	result, err := ParseGameResult(game.Status, game.Winner)
	if err != nil {
		return entity.GameResult{}, errs.NewExternalServiceError(ServiceName, "get_game_result", err)
	}
	return result, nil
}

// terminalStatuses are the export statuses of games that are over
var terminalStatuses = map[string]struct{}{
	"mate":          {},
	"resign":        {},
	"stalemate":     {},
	"timeout":       {},
	"outoftime":     {},
	"draw":          {},
	"cheat":         {},
	"noStart":       {},
	"aborted":       {},
	"unknownFinish": {},
	"variantEnd":    {},
}

// ParseGameResult maps an exported game status onto the escrow view of a game.
// Empty or unrecognised statuses are rejected so they are never settled.
func ParseGameResult(status, winner string) (entity.GameResult, error) {
	result := entity.GameResult{RawStatus: status}
	switch status {
	case "created":
		result.Status = entity.GameCreated
	case "started":
		result.Status = entity.GameStarted
	default:
		if _, ok := terminalStatuses[status]; !ok {
			return entity.GameResult{}, fmt.Errorf("unrecognised game status %q", status)
		}
		result.Status = entity.GameFinished
		if color := entity.Color(winner); color.IsValid() {
			result.Winner = color
		}
	}
	return result, nil
}
