package system

import "math"

func cosOf(r float64) float64 { return math.Cos(r) }
func sinOf(r float64) float64 { return math.Sin(r) }
