package model

// FlattenRaw converts a tree of raw elements into a flat list in depth-first
// order. Children are cleared on the returned copies.
func FlattenRaw(elements []RawElement) []RawElement {
	var result []RawElement
	for _, el := range elements {
		flattenRecursive(el, &result)
	}
	return result
}

func flattenRecursive(el RawElement, result *[]RawElement) {
	children := el.Children
	flat := el
	flat.Children = nil
	*result = append(*result, flat)

	for _, child := range children {
		flattenRecursive(child, result)
	}
}
