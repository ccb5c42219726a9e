package analytics

import (
	"fmt"

	"github.com/gutsafe/gutsafe-api/schema"
)

// Fixed thresholds for the canned advice rules.
const (
	frequentSymptomThreshold = 0.3
	correlationThreshold     = 0.5
)

// GenerateRecommendations maps pattern and trend outputs to canned advice
// strings bucketed as dietary, lifestyle or medical. The same advice can
// appear more than once when several patterns trip the same rule; callers
// that want unique strings dedupe on their side.
func GenerateRecommendations(patterns []schema.SymptomPattern, trends schema.TrendSummary) schema.Recommendations {
	recommendations := schema.Recommendations{
		Dietary:   make([]string, 0),
		Lifestyle: make([]string, 0),
		Medical:   make([]string, 0),
	}

	for _, p := range patterns {
		if p.Frequency > frequentSymptomThreshold {
			recommendations.Dietary = append(recommendations.Dietary,
				fmt.Sprintf("Keep a detailed food diary to narrow down what precedes your %s episodes", p.Type))
			recommendations.Medical = append(recommendations.Medical,
				fmt.Sprintf("Consider discussing your frequent %s with a healthcare provider", p.Type))
		}

		if p.Correlations.Food > correlationThreshold {
			recommendations.Dietary = append(recommendations.Dietary,
				fmt.Sprintf("Your %s often follows meals; try eliminating suspected trigger foods one at a time", p.Type))
		}
		if p.Correlations.Stress > correlationThreshold {
			recommendations.Lifestyle = append(recommendations.Lifestyle,
				"Try stress management techniques such as meditation, deep breathing, or a short daily walk")
		}
		if p.Correlations.Sleep > correlationThreshold {
			recommendations.Lifestyle = append(recommendations.Lifestyle,
				"Aim for a consistent sleep schedule; poor sleep often precedes your symptoms")
		}
	}

	for _, symptomType := range trends.Worsening {
		recommendations.Medical = append(recommendations.Medical,
			fmt.Sprintf("Your %s appears to be worsening over time; consult a healthcare provider", symptomType))
	}
	for _, symptomType := range trends.Improving {
		recommendations.Lifestyle = append(recommendations.Lifestyle,
			fmt.Sprintf("Your %s is improving; continue your current approach", symptomType))
	}

	return recommendations
}
