package configurator

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Num coerces heterogeneous backend values (string, number, null) to a
// finite float64. Anything unparseable or non-finite becomes 0; pricing
// arithmetic never fails on malformed input.
func Num(v interface{}) float64 {
	var x float64
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		x = t
	case float32:
		x = float64(t)
	case int:
		x = float64(t)
	case int32:
		x = float64(t)
	case int64:
		x = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		x = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		x = f
	default:
		return 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Qty is the effective order quantity used to scale per-unit extras:
// floor of the tier quantity, never below 1.
func Qty(sel *Selection) int64 {
	if sel == nil || sel.SizeQuantity == nil {
		return 1
	}
	q := int64(math.Floor(Num(*sel.SizeQuantity)))
	if q < 1 {
		return 1
	}
	return q
}
