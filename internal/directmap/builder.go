package directmap

import (
	"context"
	"sort"

	"tfoods/internal/token"
)

// Pair is the extraction result of one recipe document: the outputs it
// produces and the raw (pre-canonical) tokens it declares.
type Pair struct {
	Outputs map[string]struct{}
	Tokens  []string
}

// Map is the finalized direct ingredient map. Each token list is sorted and
// duplicate-free, and no key maps to an empty list.
type Map map[string][]string

// Outputs returns the sorted output identifiers.
func (m Map) Outputs() []string {
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ItemIngredients returns the sorted set of item identifiers referenced as
// direct ingredients anywhere in the map. Tag and fluid tokens are excluded:
// they do not name discrete items.
func (m Map) ItemIngredients() []string {
	set := make(map[string]struct{})
	for _, tokens := range m {
		for _, t := range tokens {
			if id, ok := token.ItemID(t); ok {
				set[id] = struct{}{}
			}
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Builder accumulates pairs into an intermediate output -> token-set form.
// It is not safe for concurrent use; feed it from a single goroutine.
type Builder struct {
	acc map[string]map[string]struct{}
}

// NewBuilder returns an empty accumulator scoped to one run.
func NewBuilder() *Builder {
	return &Builder{acc: make(map[string]map[string]struct{})}
}

// Add merges one pair. Every raw token is canonicalized and every output in
// the pair receives the full token set. Pairs with an empty side contribute
// nothing at all.
func (b *Builder) Add(p Pair) {
	if len(p.Outputs) == 0 || len(p.Tokens) == 0 {
		return
	}
	canonical := make([]string, len(p.Tokens))
	for i, t := range p.Tokens {
		canonical[i] = token.Canonicalize(t)
	}
	for out := range p.Outputs {
		set := b.acc[out]
		if set == nil {
			set = make(map[string]struct{})
			b.acc[out] = set
		}
		for _, t := range canonical {
			set[t] = struct{}{}
		}
	}
}

// Len returns the number of outputs accumulated so far.
func (b *Builder) Len() int { return len(b.acc) }

// Finalize converts the accumulator into the invariant Map form. This is the
// only place ordering is imposed.
func (b *Builder) Finalize() Map {
	m := make(Map, len(b.acc))
	for out, set := range b.acc {
		tokens := make([]string, 0, len(set))
		for t := range set {
			tokens = append(tokens, t)
		}
		sort.Strings(tokens)
		m[out] = tokens
	}
	return m
}

// Reduce drains pairs from ch into a fresh Builder and finalizes the result.
// It returns early with ctx.Err() if the context is cancelled; senders are
// expected to close ch when extraction finishes.
func Reduce(ctx context.Context, ch <-chan Pair) (Map, error) {
	b := NewBuilder()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case p, ok := <-ch:
			if !ok {
				return b.Finalize(), nil
			}
			b.Add(p)
		}
	}
}
