package token_test

import (
	"testing"

	"tfoods/internal/token"
)

func TestCanonicalizeBareItemID(t *testing.T) {
	if got := token.Canonicalize("minecraft:wheat"); got != "item:minecraft:wheat" {
		t.Fatalf("unexpected token: %q", got)
	}
}

func TestCanonicalizeTagReference(t *testing.T) {
	if got := token.Canonicalize("#forge:dough"); got != "tag:forge:dough" {
		t.Fatalf("unexpected token: %q", got)
	}
}

func TestCanonicalizeAlreadyCanonical(t *testing.T) {
	for _, in := range []string{"item:minecraft:wheat", "tag:forge:dough", "fluid:minecraft:water"} {
		if got := token.Canonicalize(in); got != in {
			t.Fatalf("canonical input changed: %q -> %q", in, got)
		}
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	inputs := []string{"minecraft:wheat", "#forge:dough", "garbage", "", "item:a:b"}
	for _, in := range inputs {
		once := token.Canonicalize(in)
		if twice := token.Canonicalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestCanonicalizePassThrough(t *testing.T) {
	cases := []string{"", "plainword", "#no_namespace", "#"}
	for _, in := range cases {
		if got := token.Canonicalize(in); got != in {
			t.Fatalf("expected pass-through for %q, got %q", in, got)
		}
	}
}

func TestCanonicalizeTrimsWhitespace(t *testing.T) {
	if got := token.Canonicalize("  minecraft:apple "); got != "item:minecraft:apple" {
		t.Fatalf("unexpected token: %q", got)
	}
}

func TestKindOf(t *testing.T) {
	cases := map[string]token.Kind{
		"item:minecraft:wheat": token.KindItem,
		"tag:forge:dough":      token.KindTag,
		"fluid:minecraft:milk": token.KindFluid,
	}
	for in, want := range cases {
		kind, ok := token.KindOf(in)
		if !ok || kind != want {
			t.Fatalf("KindOf(%q) = %v, %v", in, kind, ok)
		}
	}
	if _, ok := token.KindOf("minecraft:wheat"); ok {
		t.Fatal("expected non-canonical string to have no kind")
	}
}

func TestItemID(t *testing.T) {
	id, ok := token.ItemID("item:minecraft:bread")
	if !ok || id != "minecraft:bread" {
		t.Fatalf("ItemID = %q, %v", id, ok)
	}
	if _, ok := token.ItemID("tag:forge:dough"); ok {
		t.Fatal("tags must not yield item IDs")
	}
}

func TestIsItemID(t *testing.T) {
	if !token.IsItemID("minecraft:bread") {
		t.Fatal("expected namespaced id to qualify")
	}
	if token.IsItemID("#forge:dough") || token.IsItemID("bread") {
		t.Fatal("tag references and bare words must not qualify")
	}
}
