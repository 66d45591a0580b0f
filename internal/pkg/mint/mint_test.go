package mint

import (
	"strings"
	"testing"
)

func TestNewTokenID_Format(t *testing.T) {
	id := NewTokenID()

	if !strings.HasPrefix(id, "SKILL-") {
		t.Fatalf("unexpected prefix: %s", id)
	}

	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d (%s)", len(parts), id)
	}
	if len(parts[2]) != tokenRandLen {
		t.Fatalf("expected %d random chars, got %d", tokenRandLen, len(parts[2]))
	}
	if id != strings.ToUpper(id) {
		t.Fatalf("token id not uppercased: %s", id)
	}
}

func TestNewTxHash_Is64Hex(t *testing.T) {
	for i := 0; i < 100; i++ {
		h := NewTxHash()
		if !strings.HasPrefix(h, "0x") {
			t.Fatalf("missing 0x prefix: %s", h)
		}
		body := strings.TrimPrefix(h, "0x")
		if len(body) != 64 {
			t.Fatalf("expected 64 hex chars, got %d", len(body))
		}
		for _, r := range body {
			if !strings.ContainsRune(hexDigits, r) {
				t.Fatalf("non-hex char %q in %s", r, h)
			}
		}
	}
}

func TestExplorerURL(t *testing.T) {
	h := NewTxHash()
	u := ExplorerURL(h)
	if u != "https://polygonscan.com/tx/"+h {
		t.Fatalf("unexpected explorer url: %s", u)
	}
}
