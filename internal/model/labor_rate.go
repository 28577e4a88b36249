package model

import "time"

// LaborRate is a regionally scoped hourly rate used for all time-based
// costing. TotalRate is derived (hourly + overhead) and nullable: a row saved
// without it costs labor at zero until recomputed.
type LaborRate struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Region        string    `json:"region,omitempty"`
	HourlyRate    float64   `json:"hourly_rate"`
	OverheadRate  float64   `json:"overhead_rate"`
	TotalRate     *float64  `json:"total_rate"`
	ProfitMargin  float64   `json:"profit_margin"` // decimal fraction, 0.20 = 20%
	EffectiveDate time.Time `json:"effective_date"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ComputeTotalRate derives TotalRate from the hourly and overhead rates.
// Called on every create/update so nil only survives for legacy rows.
func (r *LaborRate) ComputeTotalRate() {
	total := r.HourlyRate + r.OverheadRate
	r.TotalRate = &total
}

// EffectiveTotalRate returns the hourly total used for costing, 0 when unset.
func (r *LaborRate) EffectiveTotalRate() float64 {
	if r.TotalRate == nil {
		return 0
	}
	return *r.TotalRate
}
