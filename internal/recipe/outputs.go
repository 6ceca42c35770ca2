package recipe

import "tfoods/internal/token"

// Output field names tried in order. The fallback names are only consulted
// when the primary names yield nothing, so recipes that carry both a
// "result" and an "output" block do not double-contribute.
var (
	primaryOutputFields  = []string{"result", "results"}
	fallbackOutputFields = []string{"output", "outputs"}
)

// Result descriptor field names that carry an item identifier.
var itemAliasFields = []string{"item", "id", "name"}

// ExtractOutputs returns the set of output item identifiers a recipe
// document produces. It recognizes scalar results, result objects with
// item/id/name fields, lists of either, and the result/results and
// output/outputs field name conventions. Unrecognized shapes yield an empty
// set, never an error. Tag-based and non-item outputs are ignored.
func ExtractOutputs(body map[string]any) map[string]struct{} {
	outputs := make(map[string]struct{})
	if body == nil {
		return outputs
	}

	for _, field := range primaryOutputFields {
		if v, ok := body[field]; ok {
			collectResult(v, outputs)
		}
	}
	if len(outputs) == 0 {
		for _, field := range fallbackOutputFields {
			if v, ok := body[field]; ok {
				collectResult(v, outputs)
			}
		}
	}
	return outputs
}

func collectResult(v any, out map[string]struct{}) {
	if v == nil {
		return
	}

	if s, ok := asString(v); ok {
		if token.IsItemID(s) {
			out[s] = struct{}{}
		}
		return
	}

	if list, ok := asList(v); ok {
		for _, el := range list {
			collectResult(el, out)
		}
		return
	}

	obj, ok := asObject(v)
	if !ok {
		return
	}

	for _, field := range itemAliasFields {
		if s, ok := asString(obj[field]); ok && token.IsItemID(s) {
			out[s] = struct{}{}
		}
	}

	// Some producers nest the descriptor one level deeper, e.g.
	// {"result": {"item": {"id": "mod:thing"}}}. Recurse only into values
	// that themselves look like result descriptors so ingredient sub-objects
	// are never mistaken for outputs.
	for _, v := range obj {
		switch nested := v.(type) {
		case map[string]any:
			if looksLikeResultObject(nested) {
				collectResult(nested, out)
			}
		case []any:
			if looksLikeResultList(nested) {
				collectResult(nested, out)
			}
		}
	}
}

func looksLikeResultObject(obj map[string]any) bool {
	for _, field := range itemAliasFields {
		if _, ok := obj[field]; ok {
			return true
		}
	}
	return false
}

func looksLikeResultList(list []any) bool {
	for _, el := range list {
		if obj, ok := asObject(el); ok && looksLikeResultObject(obj) {
			return true
		}
	}
	return false
}
