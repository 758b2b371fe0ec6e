package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormMetricAliases(t *testing.T) {
	cases := map[string]string{
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
	for raw, want := range cases {
		assert.Equal(t, want, NormMetric(raw), "alias %q", raw)
	}
}

func TestNormMetricFallback(t *testing.T) {
	assert.Equal(t, "unknown_col", NormMetric("Unknown Col"))
	assert.Equal(t, "max_heart_rate", NormMetric("Max Heart Rate"))
}

func TestNormMetricTrimsBeforeMatching(t *testing.T) {
	assert.Equal(t, "total_distance", NormMetric("  Total Distance  "))
}

func TestNormMetricBlank(t *testing.T) {
	assert.Equal(t, "", NormMetric(""))
	assert.Equal(t, "", NormMetric("   "))
}

func TestNormMetricAliasIsCaseSensitive(t *testing.T) {
	// "hrv" is not in the alias table; only the exact spellings are.
	assert.Equal(t, "hrv", NormMetric("hrv"))
}
