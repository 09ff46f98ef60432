package quiz

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Paris", "paris"},
		{"  PARIS  ", "paris"},
		{"\tGo Lang\n", "go lang"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.input); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestHashAnswerRoundTrip(t *testing.T) {
	// A student submission that differs only in case and surrounding
	// whitespace must match the stored digest.
	stored := HashAnswer("Paris")
	for _, submission := range []string{"paris", "PARIS", "  Paris  ", "\tparis\n"} {
		if HashAnswer(submission) != stored {
			t.Fatalf("submission %q did not match stored digest", submission)
		}
	}
	if HashAnswer("london") == stored {
		t.Fatalf("distinct answers produced identical digests")
	}
}

func TestHashAnswerKnownDigest(t *testing.T) {
	// sha256("paris"), pinned so the generated script's hashlib side stays
	// in lockstep.
	const want = "1670f2e42fefa5044d59a65349e47c566009488fc57d7b4376dd5787b59e3c57"
	if got := HashAnswer(" Paris "); got != want {
		t.Fatalf("HashAnswer = %q, want %q", got, want)
	}
}

func TestPassedThresholdBoundary(t *testing.T) {
	tests := []struct {
		score, total int
		want         bool
	}{
		{4, 5, true},  // exactly 0.8
		{3, 4, false}, // 0.75
		{4, 4, true},
		{0, 5, false},
		{5, 5, true},
		{0, 0, false}, // empty quiz never passes
	}
	for _, tc := range tests {
		if got := Passed(tc.score, tc.total); got != tc.want {
			t.Fatalf("Passed(%d, %d) = %v, want %v", tc.score, tc.total, got, tc.want)
		}
	}
}
