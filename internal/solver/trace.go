package solver

// Step labels what the solver did with one iteration.
type Step string

const (
	StepNewton    Step = "NEWTON"
	StepNudge     Step = "NUDGE"
	StepConverged Step = "CONVERGED"
)

// TraceRow is one row of per-iteration output. This is the primary artifact
// for "what happened" in a solve; it is only recorded on request.
type TraceRow struct {
	Iter int

	// Yield is the annualized rate (decimal) the row was evaluated at.
	Yield float64

	Price float64
	Diff  float64

	// Derivative is dPrice/dYield per unit of annualized rate.
	Derivative float64

	Step Step
}

// Result is the outcome of a single yield solve.
//
// A non-converged Result is not an error: the solver hands back its last
// iterate so a caller can still display a number, and Converged plus Residual
// let it tell a best-effort answer from a converged one.
type Result struct {
	// YieldPercent is the annualized yield, in percent.
	YieldPercent float64

	Converged  bool
	Iterations int

	// Residual is price(YieldPercent) − targetPrice at exit.
	Residual float64

	// Trace is populated when Params.RecordTrace is set.
	Trace []TraceRow
}

// WorstResult bundles the two independent solves for a callable bond.
type WorstResult struct {
	YTM Result
	YTC Result

	// YTW is min(YTM, YTC) in percent, taken exactly from the two results.
	YTW float64
}
