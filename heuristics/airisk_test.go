package heuristics

import "testing"

func TestClassifyAIRisk(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantTier    string
		wantFn      string
	}{
		{
			name:        "social scoring is prohibited",
			description: "A social scoring system ranking citizens by behavior",
			wantTier:    "unacceptable",
			wantFn:      "govern",
		},
		{
			name:        "subliminal manipulation is prohibited",
			description: "Ad engine using subliminal cues to influence purchases",
			wantTier:    "unacceptable",
			wantFn:      "govern",
		},
		{
			name:        "hiring screening is high risk",
			description: "AI-powered hiring screening tool",
			wantTier:    "high",
			wantFn:      "map",
		},
		{
			name:        "biometric identification is high risk",
			description: "Biometric identification at building entrances",
			wantTier:    "high",
			wantFn:      "map",
		},
		{
			name:        "critical infrastructure is high risk",
			description: "Model controlling critical infrastructure load balancing",
			wantTier:    "high",
			wantFn:      "map",
		},
		{
			name:        "chatbot is limited risk",
			description: "Customer support chatbot for order status",
			wantTier:    "limited",
			wantFn:      "measure",
		},
		{
			name:        "recommendation engine is limited risk",
			description: "Product recommendation engine for a storefront",
			wantTier:    "limited",
			wantFn:      "measure",
		},
		{
			name:        "everything else is minimal",
			description: "Spell checker for internal documents",
			wantTier:    "minimal",
			wantFn:      "manage",
		},
		{
			name:        "prohibited use dominates high risk",
			description: "Social scoring platform used for employment decisions",
			wantTier:    "unacceptable",
			wantFn:      "govern",
		},
		{
			name:        "high risk dominates limited risk",
			description: "Chatbot screening candidates for employment",
			wantTier:    "high",
			wantFn:      "map",
		},
		{
			name:        "matching is case insensitive",
			description: "LAW ENFORCEMENT facial analysis pilot",
			wantTier:    "high",
			wantFn:      "map",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAIRisk(tt.description)
			if got.EUAIActRiskTier != tt.wantTier {
				t.Errorf("EUAIActRiskTier = %q, want %q", got.EUAIActRiskTier, tt.wantTier)
			}
			if got.NISTAIRMFFunction != tt.wantFn {
				t.Errorf("NISTAIRMFFunction = %q, want %q", got.NISTAIRMFFunction, tt.wantFn)
			}
		})
	}
}
