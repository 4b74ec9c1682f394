package model

// Metric is a numeric value that is either present or absent. An absent
// metric is excluded from scoring; it never reads as zero.
type Metric struct {
	Value float64
	Valid bool
}

// Some wraps a computed value.
func Some(v float64) Metric { return Metric{Value: v, Valid: true} }

// None is the absent metric.
func None() Metric { return Metric{} }

// Or returns the metric's value, or def when absent.
func (m Metric) Or(def float64) float64 {
	if m.Valid {
		return m.Value
	}
	return def
}
