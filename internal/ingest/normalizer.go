// ingest/normalizer.go
package ingest

import "strings"

// metricAliases maps known vendor header spellings to canonical metric
// identifiers. Matching is exact and case-sensitive; the table is never
// mutated after init so concurrent requests can read it freely.
var metricAliases = map[string]string{
	"Total Distance":              "total_distance",
	"total_distance":              "total_distance",
	"High Speed Running Distance": "high_speed_distance",
	"HSR Distance":                "high_speed_distance",
	"HMLD":                        "high_metabolic_load_distance",
	"Sprint Distance":             "sprint_distance",
	"rMSSD":                       "hrv_rmssd",
	"HRV":                         "hrv_rmssd",
	"avg_hrv":                     "hrv_rmssd",
	"ACWR":                        "acwr",
	"session_load":                "session_load",
}

// NormMetric returns the canonical lowercase, underscore-separated identifier
// for a raw column header or metric label. Unknown names fall back to a
// mechanical trim/lowercase/underscore derivation. Blank input yields "";
// callers must skip such columns. Pure and total.
func NormMetric(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := metricAliases[trimmed]; ok {
		return canonical
	}
	return strings.ReplaceAll(strings.ToLower(trimmed), " ", "_")
}
