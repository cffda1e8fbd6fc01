package validators

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"varsha-travels/internal/models"
)

// CleanList trims every entry and drops the blank ones. The result is never nil.
func CleanList(items []models.LooseString) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(string(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CoerceRating turns any client value into a stored rating. Missing,
// non-numeric and zero values fall back to the default before the result
// is rounded and clamped to [MinRating, MaxRating].
func CoerceRating(v interface{}) int {
	f := toNumber(v)
	if math.IsNaN(f) || f == 0 {
		f = models.DefaultRating
	}
	f = math.Round(f)
	switch {
	case f < models.MinRating:
		return models.MinRating
	case f > models.MaxRating:
		return models.MaxRating
	}
	return int(f)
}

// toNumber follows loose numeric conversion: null, false and blank strings
// are zero, true is one, anything unparseable is NaN.
func toNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		switch s {
		case "Infinity", "+Infinity":
			return math.Inf(1)
		case "-Infinity":
			return math.Inf(-1)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || strings.ContainsAny(s, "xXnN_") {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
