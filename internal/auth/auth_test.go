package auth

import (
	"context"
	"testing"
)

func TestStatic(t *testing.T) {
	tests := []struct {
		name      string
		owner     Static
		wantOwner string
		wantOK    bool
	}{
		{"owner", Static("alice"), "alice", true},
		{"trimmed", Static("  bob "), "bob", true},
		{"empty", Static(""), "", false},
		{"blank", Static("   "), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, ok := tt.owner.CurrentOwner(context.Background())
			if owner != tt.wantOwner || ok != tt.wantOK {
				t.Errorf("CurrentOwner() = (%q, %v), want (%q, %v)", owner, ok, tt.wantOwner, tt.wantOK)
			}
		})
	}
}

func TestContextProvider(t *testing.T) {
	var p Context
	if _, ok := p.CurrentOwner(context.Background()); ok {
		t.Error("CurrentOwner() should be absent without an owner on the context")
	}

	ctx := WithOwner(context.Background(), "carol")
	owner, ok := p.CurrentOwner(ctx)
	if !ok || owner != "carol" {
		t.Errorf("CurrentOwner() = (%q, %v), want (carol, true)", owner, ok)
	}

	if _, ok := p.CurrentOwner(WithOwner(context.Background(), "")); ok {
		t.Error("CurrentOwner() should treat an empty owner as absent")
	}
}

func TestChain(t *testing.T) {
	chain := Chain{Context{}, Static("fallback")}

	owner, ok := chain.CurrentOwner(context.Background())
	if !ok || owner != "fallback" {
		t.Errorf("CurrentOwner() = (%q, %v), want (fallback, true)", owner, ok)
	}

	owner, ok = chain.CurrentOwner(WithOwner(context.Background(), "dave"))
	if !ok || owner != "dave" {
		t.Errorf("CurrentOwner() = (%q, %v), want (dave, true)", owner, ok)
	}

	if _, ok := (Chain{}).CurrentOwner(context.Background()); ok {
		t.Error("empty Chain should be unauthenticated")
	}
}
