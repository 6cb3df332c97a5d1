package handlers

import (
	"log"
	"net/http"

	"bond-yield/internal/analysis"
	"bond-yield/internal/api/models"

	"github.com/gin-gonic/gin"
)

// RankHandler handles bond-ranking requests
type RankHandler struct{}

// NewRankHandler creates a new rank handler
func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankBonds handles POST /api/v1/yield/rank
func (h *RankHandler) RankBonds(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req.Bonds) == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "bonds must not be empty")
		return
	}

	quotes := make([]analysis.BondQuote, 0, len(req.Bonds))
	for i, q := range req.Bonds {
		bond, err := buildBond(q.BondFile, q.Bond)
		if err != nil {
			log.Printf("RankHandler: skipping bond %d: %v", i, err)
			continue // Skip invalid bonds
		}
		quotes = append(quotes, analysis.BondQuote{
			Bond:         bond,
			CurrentPrice: q.CurrentPrice,
		})
	}

	ranked := analysis.RankByYieldToWorst(quotes, buildParams(req.Options))

	rankings := make([]models.Ranking, len(ranked))
	for i, s := range ranked {
		rankings[i] = models.Ranking{
			Rank:         i + 1,
			Name:         s.Name,
			CurrentPrice: s.CurrentPrice,
			YTM:          s.YTM,
			YTC:          s.YTC,
			Callable:     s.Callable,
			YTW:          s.YTW,
			Converged:    s.Converged,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
