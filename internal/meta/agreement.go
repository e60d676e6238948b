// Package meta cross-examines the combined analysis output: it scores
// composite confidence, detects contradicting signals and raises
// uncertainty flags. Every check is deterministic and fault-tolerant;
// missing inputs skip a check, never fail it.
package meta

import (
	"fmt"
	"strings"

	"RiskScope/internal/domain/models"
)

// Agreement scoring constants.
const (
	agreementBonus        = 0.08
	strongAgreementBonus  = 0.04
	disagreementPenalty   = 0.10
	weakSignalThreshold   = 0.55
	strongAgreementMargin = 0.10
)

// Signal strength labels.
const (
	SignalStrong   = "strong"
	SignalModerate = "moderate"
	SignalWeak     = "weak"
)

// EvaluateModelAgreement compares the directional calls of the forecast's
// sub-models. Agreement across all known signals earns a confidence bonus;
// an outright split earns a penalty. Fewer than two known directions leaves
// the adjustment neutral.
func EvaluateModelAgreement(forecast *models.Forecast) *models.ModelAgreement {
	if forecast == nil {
		return &models.ModelAgreement{
			SignalStrength: SignalWeak,
			Notes:          "No forecast data available, agreement cannot be assessed.",
		}
	}

	signals := make([]models.ModelSignal, 0, len(forecast.Models))
	known := 0
	for _, m := range forecast.Models {
		dir := normalizeDirection(m.Direction)
		if dir != "unknown" {
			known++
		}
		signals = append(signals, models.ModelSignal{Name: m.Name, Direction: dir})
	}

	directionMatch := known >= 2
	if directionMatch {
		var first string
		for _, s := range signals {
			if s.Direction == "unknown" {
				continue
			}
			if first == "" {
				first = s.Direction
			} else if s.Direction != first {
				directionMatch = false
				break
			}
		}
	}

	strength := assessSignalStrength(forecast.ProbUp, forecast.ProbDown)
	agreement := directionMatch && strength != SignalWeak

	var adjustment float64
	switch {
	case agreement:
		adjustment = agreementBonus
		if strength == SignalStrong {
			adjustment += strongAgreementBonus
		}
	case known >= 2 && !directionMatch:
		adjustment = -disagreementPenalty
	}

	return &models.ModelAgreement{
		Agreement:            agreement,
		DirectionMatch:       directionMatch,
		Signals:              signals,
		ConfidenceAdjustment: round3(adjustment),
		SignalStrength:       strength,
		Notes:                agreementNotes(signals, directionMatch, strength, known),
	}
}

func normalizeDirection(raw string) string {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "up", "upward", "bullish", "positive":
		return "up"
	case "down", "downward", "bearish", "negative":
		return "down"
	case "neutral", "flat", "sideways":
		return "neutral"
	}
	return "unknown"
}

func assessSignalStrength(probUp, probDown *float64) string {
	if probUp == nil && probDown == nil {
		return SignalWeak
	}
	dominant := 0.0
	if probUp != nil {
		dominant = *probUp
	}
	if probDown != nil && *probDown > dominant {
		dominant = *probDown
	}
	switch {
	case dominant >= weakSignalThreshold+strongAgreementMargin:
		return SignalStrong
	case dominant >= weakSignalThreshold:
		return SignalModerate
	}
	return SignalWeak
}

func agreementNotes(signals []models.ModelSignal, match bool, strength string, known int) string {
	if known < 2 {
		return "Insufficient sub-model data to assess directional agreement."
	}
	if match {
		dir := ""
		for _, s := range signals {
			if s.Direction != "unknown" {
				dir = strings.ToUpper(s.Direction)
				break
			}
		}
		if strength == SignalStrong {
			return fmt.Sprintf("Both models strongly agree: %s. High reliability signal.", dir)
		}
		return fmt.Sprintf("Both models agree on %s direction (moderate signal strength).", dir)
	}
	parts := make([]string, 0, len(signals))
	for _, s := range signals {
		if s.Direction != "unknown" {
			parts = append(parts, fmt.Sprintf("%s signals %s", s.Name, strings.ToUpper(s.Direction)))
		}
	}
	return fmt.Sprintf("Model disagreement: %s. Treat directional forecast with caution.",
		strings.Join(parts, ", "))
}
