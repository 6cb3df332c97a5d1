package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"bond-yield/internal/api/models"
	"bond-yield/internal/config"
	"bond-yield/internal/model"
	"bond-yield/internal/solver"

	"github.com/gin-gonic/gin"
)

// YieldHandler handles yield-solving requests
type YieldHandler struct{}

// NewYieldHandler creates a new yield handler
func NewYieldHandler() *YieldHandler {
	return &YieldHandler{}
}

// SolveMaturity handles POST /api/v1/yield/maturity
func (h *YieldHandler) SolveMaturity(c *gin.Context) {
	var req models.YieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	bond, err := buildBond(req.BondFile, req.Bond)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_BOND", err.Error())
		return
	}

	res, err := solver.SolveYTM(req.CurrentPrice, bond, buildParams(req.Options))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.YieldResponse{
		Status: "completed",
		Bond:   bond.Name,
		Result: convertResult(res),
	})
}

// SolveWorst handles POST /api/v1/yield/worst
func (h *YieldHandler) SolveWorst(c *gin.Context) {
	var req models.YieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	bond, err := buildBond(req.BondFile, req.Bond)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_BOND", err.Error())
		return
	}
	if !bond.Callable() {
		respondError(c, http.StatusBadRequest, "NOT_CALLABLE", "bond has no call terms; use /yield/maturity")
		return
	}

	worst, err := solver.SolveWorst(req.CurrentPrice, bond, buildParams(req.Options))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.WorstYieldResponse{
		Status: "completed",
		Bond:   bond.Name,
		YTM:    convertResult(worst.YTM),
		YTC:    convertResult(worst.YTC),
		YTW:    worst.YTW,
	})
}

// Helper methods shared across handlers

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// buildBond resolves a bond_file preset (if any), overlays inline overrides,
// and validates the result.
func buildBond(file string, override models.BondConfig) (model.BondTerms, error) {
	cfg := config.BondConfig{
		Name:            override.Name,
		FaceValue:       override.FaceValue,
		CouponRate:      override.CouponRate,
		PaymentsPerYear: override.PaymentsPerYear,
		YearsToMaturity: override.YearsToMaturity,
		YearsToCall:     override.YearsToCall,
		CallPrice:       override.CallPrice,
	}

	if file != "" {
		// bond_file is just the preset name (e.g. "treasury_10y"); files are
		// always looked up in the bond directory.
		path := filepath.Join(bondDir(), file+".yaml")
		loaded, err := config.LoadBondFile(path)
		if err != nil {
			return model.BondTerms{}, fmt.Errorf("bond file %q: %w", file, err)
		}
		cfg = config.MergeBond(loaded, cfg)
	}

	terms := cfg.ToModelTerms()
	if err := terms.Validate(); err != nil {
		return model.BondTerms{}, err
	}
	return terms, nil
}

func buildParams(opts models.SolveOptions) solver.Params {
	return solver.Params{
		Tolerance:     opts.Tolerance,
		MaxIterations: opts.MaxIterations,
		InitialGuess:  opts.InitialGuess,
		RecordTrace:   opts.IncludeTrace,
	}
}

func convertResult(r solver.Result) models.SolveResult {
	out := models.SolveResult{
		YieldPercent: r.YieldPercent,
		Converged:    r.Converged,
		Iterations:   r.Iterations,
		Residual:     r.Residual,
	}
	if len(r.Trace) > 0 {
		out.Trace = make([]models.TraceRow, len(r.Trace))
		for i, row := range r.Trace {
			out.Trace[i] = models.TraceRow{
				Iter:       row.Iter,
				Yield:      row.Yield,
				Price:      row.Price,
				Diff:       row.Diff,
				Derivative: row.Derivative,
				Step:       string(row.Step),
			}
		}
	}
	return out
}

func bondDir() string {
	dir := os.Getenv("BOND_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "bonds")
		} else {
			dir = "./examples/bonds"
		}
	}
	return dir
}
