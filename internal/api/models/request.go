package models

// YieldRequest is the request body for the yield endpoints.
// Either bond_file (a preset under the bond directory) or an inline bond is
// required; inline fields override the preset's.
type YieldRequest struct {
	CurrentPrice float64      `json:"current_price" binding:"required"`
	BondFile     string       `json:"bond_file,omitempty"`
	Bond         BondConfig   `json:"bond,omitempty"`
	Options      SolveOptions `json:"options,omitempty"`
}

// BondConfig defines bond terms in a request
type BondConfig struct {
	Name            string  `json:"name,omitempty"`
	FaceValue       float64 `json:"face_value"`
	CouponRate      float64 `json:"coupon_rate"`
	PaymentsPerYear int     `json:"payments_per_year"`
	YearsToMaturity float64 `json:"years_to_maturity"`
	YearsToCall     float64 `json:"years_to_call,omitempty"`
	CallPrice       float64 `json:"call_price,omitempty"`
}

// SolveOptions contains optional solver tuning
type SolveOptions struct {
	Tolerance     float64 `json:"tolerance,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	InitialGuess  float64 `json:"initial_guess,omitempty"`
	IncludeTrace  bool    `json:"include_trace,omitempty"` // default: false
}

// PriceRequest is the request body for the price endpoint (yield → price).
type PriceRequest struct {
	YieldPercent float64    `json:"yield_percent" binding:"required"`
	BondFile     string     `json:"bond_file,omitempty"`
	Bond         BondConfig `json:"bond,omitempty"`
	// ToCall prices to the call date and call price instead of maturity.
	ToCall bool `json:"to_call,omitempty"`
}

// RankRequest asks for a set of quoted bonds ranked by yield to worst.
type RankRequest struct {
	Bonds   []QuotedBond `json:"bonds" binding:"required"`
	Options SolveOptions `json:"options,omitempty"`
}

// QuotedBond is one bond plus its observed market price.
type QuotedBond struct {
	CurrentPrice float64    `json:"current_price" binding:"required"`
	BondFile     string     `json:"bond_file,omitempty"`
	Bond         BondConfig `json:"bond,omitempty"`
}
