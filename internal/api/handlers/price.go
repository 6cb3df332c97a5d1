package handlers

import (
	"net/http"

	"bond-yield/internal/api/models"
	"bond-yield/internal/solver"

	"github.com/gin-gonic/gin"
)

// PriceHandler handles price-from-yield requests
type PriceHandler struct{}

// NewPriceHandler creates a new price handler
func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

// ComputePrice handles POST /api/v1/price
func (h *PriceHandler) ComputePrice(c *gin.Context) {
	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	bond, err := buildBond(req.BondFile, req.Bond)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_BOND", err.Error())
		return
	}

	horizon := bond.YearsToMaturity
	redemption := bond.FaceValue
	if req.ToCall {
		if !bond.Callable() {
			respondError(c, http.StatusBadRequest, "NOT_CALLABLE", "bond has no call terms")
			return
		}
		horizon = bond.YearsToCall
		redemption = bond.CallPrice
	}

	price, err := solver.Price(bond, horizon, redemption, req.YieldPercent)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.PriceResponse{
		Price:        price,
		YieldPercent: req.YieldPercent,
		ToCall:       req.ToCall,
	})
}
