package chess

import "testing"

func TestGuard_ProtectSimpleMove(t *testing.T) {
	guard := NewGuard()

	protected, placeholders := guard.Protect("12.Nf3 e4")

	if protected != "[CHESS_2][CHESS_0] [CHESS_1]" {
		t.Errorf("Protected text = %q, want %q", protected, "[CHESS_2][CHESS_0] [CHESS_1]")
	}

	if len(placeholders) != 3 {
		t.Fatalf("Expected 3 placeholders, got %d", len(placeholders))
	}

	if placeholders["[CHESS_0]"] != "Nf3" {
		t.Errorf("Expected [CHESS_0] to hold 'Nf3', got '%s'", placeholders["[CHESS_0]"])
	}

	if placeholders["[CHESS_1]"] != "e4" {
		t.Errorf("Expected [CHESS_1] to hold 'e4', got '%s'", placeholders["[CHESS_1]"])
	}

	if placeholders["[CHESS_2]"] != "12." {
		t.Errorf("Expected [CHESS_2] to hold '12.', got '%s'", placeholders["[CHESS_2]"])
	}
}

func TestGuard_ProtectCastling(t *testing.T) {
	guard := NewGuard()

	protected, placeholders := guard.Protect("White castles O-O-O then O-O")

	if protected != "White castles [CHESS_0] then [CHESS_1]" {
		t.Errorf("Protected text = %q", protected)
	}

	if placeholders["[CHESS_0]"] != "O-O-O" {
		t.Errorf("Expected long castle first, got '%s'", placeholders["[CHESS_0]"])
	}

	if placeholders["[CHESS_1]"] != "O-O" {
		t.Errorf("Expected short castle second, got '%s'", placeholders["[CHESS_1]"])
	}
}

func TestGuard_ProtectReservedTerms(t *testing.T) {
	guard := NewGuard()

	protected, placeholders := guard.Protect("the N goes to e5")

	if protected != "the [TERM_1] goes to [CHESS_0]" {
		t.Errorf("Protected text = %q", protected)
	}

	if placeholders["[TERM_1]"] != "N" {
		t.Errorf("Expected [TERM_1] to hold 'N', got '%s'", placeholders["[TERM_1]"])
	}
}

func TestGuard_ProtectNoNotation(t *testing.T) {
	guard := NewGuard()

	protected, placeholders := guard.Protect("nothing to shield in this sentence")

	if protected != "nothing to shield in this sentence" {
		t.Errorf("Expected text unchanged, got %q", protected)
	}

	if len(placeholders) != 0 {
		t.Errorf("Expected empty placeholder map, got %d entries", len(placeholders))
	}
}

func TestGuard_RoundTrip(t *testing.T) {
	guard := NewGuard()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"plain prose", "nothing protected here at all"},
		{"single move", "White plays Nf3 and wins"},
		{"full game line", "1.e4 e5 2.Nf3 Nc6 3.Bb5 a6 1-0"},
		{"castling and checks", "after O-O-O the attack with Qxh7+ decides"},
		{"reserved terms", "the N and the B cooperate"},
		{"multiline block", "first line with 12.Re1\nsecond line with e4 holds"},
		{"annotated", "21.Bxf7+!? sets a trap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protected, placeholders := guard.Protect(tt.text)
			restored := guard.Restore(protected, placeholders)
			if restored != tt.text {
				t.Errorf("Round trip = %q, want %q", restored, tt.text)
			}
		})
	}
}

func TestGuard_RestoreIdempotent(t *testing.T) {
	guard := NewGuard()

	protected, placeholders := guard.Protect("12.Nf3 Nc6")

	once := guard.Restore(protected, placeholders)
	twice := guard.Restore(once, placeholders)

	if once != twice {
		t.Errorf("Second restore changed text: %q vs %q", once, twice)
	}
}

func TestGuard_RestoreUnknownPlaceholder(t *testing.T) {
	guard := NewGuard()

	text := "translated [CHESS_9] stays"
	restored := guard.Restore(text, PlaceholderMap{"[CHESS_0]": "Nf3"})

	if restored != text {
		t.Errorf("Expected unknown placeholder untouched, got %q", restored)
	}
}

func TestGuard_RestoreEmptyMap(t *testing.T) {
	guard := NewGuard()

	if got := guard.Restore("unchanged", PlaceholderMap{}); got != "unchanged" {
		t.Errorf("Expected 'unchanged', got %q", got)
	}
}

func TestGuard_DeterministicNumbering(t *testing.T) {
	guard := NewGuard()

	first, _ := guard.Protect("1.e4 e5 2.Nf3")
	second, _ := guard.Protect("1.e4 e5 2.Nf3")

	if first != second {
		t.Errorf("Protection not deterministic: %q vs %q", first, second)
	}
}

func TestGuard_SharedRegistry(t *testing.T) {
	reg := NewRegistry()
	guard := NewGuardWithRegistry(reg)

	if guard.Registry() != reg {
		t.Error("Expected guard to keep the shared registry")
	}
}

func TestReservedTerms(t *testing.T) {
	terms := ReservedTerms()

	if len(terms) != 11 {
		t.Fatalf("Expected 11 reserved terms, got %d", len(terms))
	}

	if terms[0] != "K" || terms[len(terms)-1] != "ep" {
		t.Errorf("Unexpected term order: %v", terms)
	}
}
