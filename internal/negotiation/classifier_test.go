package negotiation

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		utterance string
		expect    TacticSignature
	}{
		{
			name:      "research signal",
			utterance: "The market rate for this role is higher",
			expect:    TacticSignature{HasResearch: true},
		},
		{
			name:      "value signal",
			utterance: "My experience and skills justify more",
			expect:    TacticSignature{ShowsValue: true},
		},
		{
			name:      "aggressive signal",
			utterance: "I expect at least 120k, I must have it",
			expect:    TacticSignature{IsAggressive: true},
		},
		{
			name:      "collaborative signal",
			utterance: "I understand your constraints, let's find something fair together",
			expect:    TacticSignature{IsCollaborative: true},
		},
		{
			name:      "signals co-occur",
			utterance: "Industry data shows my skills deserve more, but I understand your budget",
			expect:    TacticSignature{HasResearch: true, ShowsValue: true, IsCollaborative: true},
		},
		{
			name:      "case insensitive",
			utterance: "MARKET DATA SUPPORTS THIS",
			expect:    TacticSignature{HasResearch: true},
		},
		{
			name:      "substring matching catches stems",
			utterance: "I achieved a 40% revenue increase",
			expect:    TacticSignature{ShowsValue: true},
		},
		{
			name:      "no signals",
			utterance: "Hello there",
			expect:    TacticSignature{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.utterance); got != tt.expect {
				t.Fatalf("expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}
