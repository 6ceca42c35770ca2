package recipe

import "tfoods/internal/token"

// Fluid descriptor field names tried at the top level of a document.
var fluidFields = []string{"fluid", "fluids", "fluidIngredient", "fluid_ingredient"}

// ExtractIngredients returns the ordered list of pre-canonical direct
// ingredient tokens a recipe document declares. All matching shapes
// contribute additively:
//
//   - shaped recipes: every descriptor in the pattern "key" object
//   - shapeless recipes: the "ingredients" list
//   - single-ingredient recipes: an "ingredient" object
//   - modded variants: "input" and "inputs", which may also carry fluids
//   - fluid descriptors under several known field names
//
// Duplicates are kept; the direct map builder deduplicates during
// finalization. Unrecognized shapes contribute nothing and never fail.
func ExtractIngredients(body map[string]any, extraFluidFields []string) []string {
	var tokens []string
	if body == nil {
		return tokens
	}

	if _, shaped := body["pattern"]; shaped {
		if key, ok := asObject(body["key"]); ok {
			for _, symbol := range sortedKeys(key) {
				tokens = collectIngredient(key[symbol], tokens)
			}
		}
	}

	if list, ok := asList(body["ingredients"]); ok {
		for _, ing := range list {
			tokens = collectIngredient(ing, tokens)
		}
	}

	if ing, ok := body["ingredient"]; ok {
		tokens = collectIngredient(ing, tokens)
	}

	if in, ok := body["input"]; ok {
		tokens = collectIngredient(in, tokens)
		tokens = collectFluid(in, tokens)
	}
	if list, ok := asList(body["inputs"]); ok {
		for _, in := range list {
			tokens = collectIngredient(in, tokens)
			tokens = collectFluid(in, tokens)
		}
	}

	fields := fluidFields
	if len(extraFluidFields) > 0 {
		fields = append(append([]string{}, fluidFields...), extraFluidFields...)
	}
	for _, field := range fields {
		if v, ok := body[field]; ok {
			tokens = collectFluid(v, tokens)
		}
	}

	return tokens
}

// collectIngredient walks one ingredient descriptor: a bare string, an
// object with item/tag fields (or id/name item aliases), a list of
// descriptors treated as an OR-set, or an object wrapping a descriptor list
// under "items".
func collectIngredient(v any, tokens []string) []string {
	if v == nil {
		return tokens
	}

	if s, ok := asString(v); ok {
		if id, isTag := token.TagFromHash(s); isTag {
			return append(tokens, token.Tag(id))
		}
		if token.IsItemID(s) {
			return append(tokens, token.Item(s))
		}
		return tokens
	}

	if list, ok := asList(v); ok {
		for _, el := range list {
			tokens = collectIngredient(el, tokens)
		}
		return tokens
	}

	obj, ok := asObject(v)
	if !ok {
		return tokens
	}

	if s, ok := asString(obj["item"]); ok && token.IsItemID(s) {
		tokens = append(tokens, token.Item(s))
	}
	if s, ok := asString(obj["tag"]); ok && token.IsItemID(s) {
		tokens = append(tokens, token.Tag(s))
	}
	for _, alias := range []string{"id", "name"} {
		if s, ok := asString(obj[alias]); ok && token.IsItemID(s) {
			tokens = append(tokens, token.Item(s))
		}
	}
	if list, ok := asList(obj["items"]); ok {
		for _, el := range list {
			tokens = collectIngredient(el, tokens)
		}
	}
	return tokens
}

// collectFluid walks the fluid descriptor family: a bare fluid id string, a
// {"fluid": ...} or {"fluids": [...]} object, or a list of either. Fluid
// tags behave like tags and are tokenized as such.
func collectFluid(v any, tokens []string) []string {
	if v == nil {
		return tokens
	}

	if s, ok := asString(v); ok {
		if token.IsItemID(s) {
			tokens = append(tokens, token.Fluid(s))
		}
		return tokens
	}

	if list, ok := asList(v); ok {
		for _, el := range list {
			tokens = collectFluid(el, tokens)
		}
		return tokens
	}

	obj, ok := asObject(v)
	if !ok {
		return tokens
	}

	if s, ok := asString(obj["fluid"]); ok && token.IsItemID(s) {
		tokens = append(tokens, token.Fluid(s))
	}
	if list, ok := asList(obj["fluids"]); ok {
		for _, el := range list {
			if s, ok := asString(el); ok && token.IsItemID(s) {
				tokens = append(tokens, token.Fluid(s))
			}
		}
	}
	if s, ok := asString(obj["fluidTag"]); ok && token.IsItemID(s) {
		tokens = append(tokens, token.Tag(s))
	} else if s, ok := asString(obj["tag"]); ok && token.IsItemID(s) {
		tokens = append(tokens, token.Tag(s))
	}
	return tokens
}
