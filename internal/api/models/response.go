package models

// SolveResult is the outcome of one yield solve.
type SolveResult struct {
	YieldPercent float64    `json:"yield_percent"`
	Converged    bool       `json:"converged"`
	Iterations   int        `json:"iterations"`
	Residual     float64    `json:"residual"`
	Trace        []TraceRow `json:"trace,omitempty"`
}

// TraceRow is one solver iteration (include_trace=true).
type TraceRow struct {
	Iter       int     `json:"iter"`
	Yield      float64 `json:"yield"`
	Price      float64 `json:"price"`
	Diff       float64 `json:"diff"`
	Derivative float64 `json:"derivative"`
	Step       string  `json:"step"` // "NEWTON", "NUDGE", "CONVERGED"
}

// YieldResponse is returned by POST /api/v1/yield/maturity
type YieldResponse struct {
	Status string      `json:"status"`
	Bond   string      `json:"bond,omitempty"`
	Result SolveResult `json:"result"`
}

// WorstYieldResponse is returned by POST /api/v1/yield/worst
type WorstYieldResponse struct {
	Status string      `json:"status"`
	Bond   string      `json:"bond,omitempty"`
	YTM    SolveResult `json:"ytm"`
	YTC    SolveResult `json:"ytc"`
	YTW    float64     `json:"ytw"`
}

// PriceResponse is returned by POST /api/v1/price
type PriceResponse struct {
	Price        float64 `json:"price"`
	YieldPercent float64 `json:"yield_percent"`
	ToCall       bool    `json:"to_call"`
}

// RankResponse is returned by POST /api/v1/yield/rank
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one ranked bond
type Ranking struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	YTM          float64 `json:"ytm"`
	YTC          float64 `json:"ytc,omitempty"`
	Callable     bool    `json:"callable"`
	YTW          float64 `json:"ytw"`
	Converged    bool    `json:"converged"`
}

// BondInfo represents information about a bond preset
type BondInfo struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	File  string    `json:"file"`
	Specs BondSpecs `json:"specs"`
}

// BondSpecs contains headline bond terms
type BondSpecs struct {
	FaceValue       float64 `json:"face_value"`
	CouponRate      float64 `json:"coupon_rate"`
	PaymentsPerYear int     `json:"payments_per_year"`
	YearsToMaturity float64 `json:"years_to_maturity"`
	Callable        bool    `json:"callable"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
