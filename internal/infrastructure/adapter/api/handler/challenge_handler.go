package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/chess-escrow/internal/infrastructure/adapter/api/dto"
)

// ChallengeHandler handles challenge-related HTTP requests
type ChallengeHandler struct {
	escrow      usecase.EscrowUseCase
	logger      coreport.Logger
	gameBaseURL string
}

// NewChallengeHandler creates a new challenge handler instance. gameBaseURL is
// used to build links to created games.
func NewChallengeHandler(escrow usecase.EscrowUseCase, logger coreport.Logger, gameBaseURL string) *ChallengeHandler {
	return &ChallengeHandler{
		escrow:      escrow,
		logger:      logger,
		gameBaseURL: gameBaseURL,
	}
}

// CreateChallenge handles POST /api/challenge
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	challenge, err := h.escrow.CreateChallenge(c.Request.Context(), p, req.ToParams())
	if err != nil {
		respondError(c, h.logger, "create_challenge", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewChallengeResponse(challenge, h.gameBaseURL))
}

// AcceptChallenge handles POST /api/challenge-accept
func (h *ChallengeHandler) AcceptChallenge(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.AcceptChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	challenge, err := h.escrow.AcceptChallenge(c.Request.Context(), p, req.ID)
	if err != nil {
		respondError(c, h.logger, "accept_challenge", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewChallengeResponse(challenge, h.gameBaseURL))
}

// GetChallenge handles GET /api/challenge/:id
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid challenge id")
		return
	}

	challenge, err := h.escrow.GetChallenge(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, h.logger, "get_challenge", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewChallengeResponse(challenge, h.gameBaseURL))
}

// ListChallenges handles GET /api/challenges
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	challenges, err := h.escrow.ListChallenges(c.Request.Context(), p)
	if err != nil {
		respondError(c, h.logger, "list_challenges", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewChallengeListResponse(challenges, h.gameBaseURL))
}
