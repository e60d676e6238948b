package riskengine

import (
	"fmt"
	"strings"

	"RiskScope/internal/domain/models"
)

// Leverage thresholds (industry-standard benchmarks).
const (
	lowDE      = 0.5
	moderateDE = 2.0
	highDE     = 4.0
	lowDA      = 0.3
	moderateDA = 0.6
)

const leverageMaxPoints = 11

// AnalyzeLeverage assesses balance-sheet debt levels: the D/E ratio as the
// primary indicator, D/A asset coverage, whether debt exceeds equity, and a
// coarse interest coverage proxy (operating income / total debt).
func AnalyzeLeverage(f *models.Fundamentals) *models.LeverageAssessment {
	var flags []string
	var points float64

	de := f.KPIs.DebtToEquity
	da := f.KPIs.DebtToAssets
	totalDebt := f.Raw.TotalDebt
	equity := f.Raw.ShareholderEquity
	opIncome := f.Raw.OperatingIncome

	if de != nil {
		switch {
		case *de > highDE:
			flags = append(flags, fmt.Sprintf("critical D/E ratio of %.2fx, extremely high leverage", *de))
			points += 4
		case *de > moderateDE:
			flags = append(flags, fmt.Sprintf("high D/E ratio of %.2fx, elevated leverage risk", *de))
			points += 2
		case *de > lowDE:
			flags = append(flags, fmt.Sprintf("moderate D/E ratio of %.2fx", *de))
			points += 1
		default:
			flags = append(flags, fmt.Sprintf("low D/E ratio of %.2fx, well-managed leverage", *de))
		}
	} else {
		flags = append(flags, "D/E ratio unavailable, leverage cannot be fully assessed")
		points += 1
	}

	if da != nil {
		switch {
		case *da > moderateDA:
			flags = append(flags, fmt.Sprintf("high debt-to-assets of %.2f, over 60%% of assets financed by debt", *da))
			points += 2
		case *da > lowDA:
			flags = append(flags, fmt.Sprintf("moderate debt-to-assets of %.2f", *da))
			points += 1
		}
	}

	if totalDebt != nil && equity != nil {
		if *equity <= 0 {
			flags = append(flags, "negative or zero shareholder equity, debt entirely dominates capital")
			points += 3
		} else if *totalDebt > *equity {
			flags = append(flags, fmt.Sprintf("total debt ($%.0f) exceeds shareholder equity ($%.0f)", *totalDebt, *equity))
			points += 2
		}
	}

	if opIncome != nil && totalDebt != nil && *totalDebt > 0 {
		proxy := *opIncome / *totalDebt
		if proxy < 0.05 {
			flags = append(flags, fmt.Sprintf("very low interest coverage proxy (%.2f), operating income barely covers debt service", proxy))
			points += 2
		} else if proxy < 0.15 {
			flags = append(flags, fmt.Sprintf("low interest coverage proxy (%.2f)", proxy))
			points += 1
		}
	}

	level, score := classify(points, leverageMaxPoints)

	details := "Partial leverage data available. "
	if de != nil && da != nil {
		details = fmt.Sprintf("Leverage assessment: D/E=%.2fx, D/A=%.2f. ", *de, *da)
	}
	details += fmt.Sprintf("Risk level: %s. %s", level, strings.Join(headFlags(flags, 2), " | "))

	return &models.LeverageAssessment{
		RiskAssessment: models.RiskAssessment{
			Level:   level,
			Score:   score,
			Details: details,
			Flags:   flags,
		},
		DebtToEquity: de,
		DebtToAssets: da,
	}
}

func headFlags(flags []string, n int) []string {
	if len(flags) > n {
		return flags[:n]
	}
	return flags
}
