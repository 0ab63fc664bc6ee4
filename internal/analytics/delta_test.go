package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		current   int64
		reference int64
		polarity  analytics.Polarity
		want      analytics.Direction
	}{
		{"growth is positive", 150, 100, analytics.HigherIsBetter, analytics.Positive},
		{"drop is negative", 80, 100, analytics.HigherIsBetter, analytics.Negative},
		{"flat is neutral", 100, 100, analytics.HigherIsBetter, analytics.Neutral},
		{"zero reference growth", 5, 0, analytics.HigherIsBetter, analytics.Positive},
		{"zero both", 0, 0, analytics.HigherIsBetter, analytics.Neutral},
		{"expense growth inverted", 150, 100, analytics.LowerIsBetter, analytics.Negative},
		{"expense drop inverted", 80, 100, analytics.LowerIsBetter, analytics.Positive},
		{"flat stays neutral inverted", 100, 100, analytics.LowerIsBetter, analytics.Neutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := analytics.Classify(
				decimal.NewFromInt(tc.current),
				decimal.NewFromInt(tc.reference),
				tc.polarity,
			)
			if got != tc.want {
				t.Fatalf("Classify(%d, %d) = %s, want %s", tc.current, tc.reference, got, tc.want)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	cases := []struct {
		name      string
		current   int64
		reference int64
		want      string
	}{
		{"increase", 125, 100, "+25.0%"},
		{"decrease", 75, 100, "-25.0%"},
		{"flat", 100, 100, "0.0%"},
		{"negative reference uses magnitude", 50, -100, "+150.0%"},
		{"zero reference positive current", 5, 0, analytics.UnboundedIncrease},
		{"zero reference zero current", 0, 0, analytics.NoChange},
		{"zero reference negative current", -5, 0, analytics.NoChange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := analytics.FormatDelta(decimal.NewFromInt(tc.current), decimal.NewFromInt(tc.reference))
			if got != tc.want {
				t.Fatalf("FormatDelta(%d, %d) = %q, want %q", tc.current, tc.reference, got, tc.want)
			}
		})
	}
}
