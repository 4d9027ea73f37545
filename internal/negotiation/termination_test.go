package negotiation

import "testing"

func TestDetectTermination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		utterance string
		expect    Verdict
	}{
		{
			name:      "accept keyword",
			utterance: "I accept the offer",
			expect:    VerdictAccept,
		},
		{
			name:      "yes keyword",
			utterance: "Yes, let's do it",
			expect:    VerdictAccept,
		},
		{
			name:      "agree keyword",
			utterance: "We agree on the terms",
			expect:    VerdictAccept,
		},
		{
			name:      "decline keyword",
			utterance: "I have to decline",
			expect:    VerdictDecline,
		},
		{
			name:      "no thank phrase",
			utterance: "No thank you",
			expect:    VerdictDecline,
		},
		{
			name:      "pass keyword",
			utterance: "I will pass on this one",
			expect:    VerdictDecline,
		},
		{
			name:      "accept wins the tie-break over decline",
			utterance: "I accept, but I also decline",
			expect:    VerdictAccept,
		},
		{
			name:      "regular utterance continues the session",
			utterance: "Can you go higher?",
			expect:    VerdictNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectTermination(tt.utterance); got != tt.expect {
				t.Fatalf("expected verdict %v, got %v", tt.expect, got)
			}
		})
	}
}
