package heuristics

import (
	"strings"

	"github.com/ethanolivertroy/grc-core/framework"
)

// RiskClassification tags an AI system with its EU AI Act risk tier and the
// NIST AI RMF function most relevant to addressing it.
type RiskClassification struct {
	EUAIActRiskTier   string `json:"eu_ai_act_risk_tier"`
	NISTAIRMFFunction string `json:"nist_ai_rmf_function"`
}

// Keyword precedence is load-bearing: a prohibited-use keyword dominates a
// high-risk keyword appearing in the same description.
var (
	unacceptableKeywords = []string{"social scoring", "subliminal"}
	highRiskKeywords     = []string{"biometric", "critical infrastructure", "employment", "hiring", "recruitment", "law enforcement"}
	limitedRiskKeywords  = []string{"chatbot", "recommendation"}
)

// ClassifyAIRisk maps a system description onto EU AI Act risk tiers by
// ordered keyword matching: prohibited uses are unacceptable, safety-critical
// domains high, interactive systems limited, everything else minimal.
func ClassifyAIRisk(description string) RiskClassification {
	text := framework.Normalize(description)

	if containsAny(text, unacceptableKeywords) {
		return RiskClassification{EUAIActRiskTier: "unacceptable", NISTAIRMFFunction: "govern"}
	}
	if containsAny(text, highRiskKeywords) {
		return RiskClassification{EUAIActRiskTier: "high", NISTAIRMFFunction: "map"}
	}
	if containsAny(text, limitedRiskKeywords) {
		return RiskClassification{EUAIActRiskTier: "limited", NISTAIRMFFunction: "measure"}
	}
	return RiskClassification{EUAIActRiskTier: "minimal", NISTAIRMFFunction: "manage"}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
