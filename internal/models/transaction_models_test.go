package models

import "testing"

func TestParseTransactionType(t *testing.T) {
	kind, err := ParseTransactionType("entry")
	if err != nil {
		t.Fatalf("unexpected error for entry: %v", err)
	}
	if kind != TransactionEntry {
		t.Errorf("expected %s, got %s", TransactionEntry, kind)
	}

	kind, err = ParseTransactionType("exit")
	if err != nil {
		t.Fatalf("unexpected error for exit: %v", err)
	}
	if kind != TransactionExit {
		t.Errorf("expected %s, got %s", TransactionExit, kind)
	}
}

func TestParseTransactionTypeRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "transfer", "ENTRY", "Exit", "entry "} {
		if _, err := ParseTransactionType(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
