package model

// FilterByIdentifier drops raw elements whose accessibility identifier is in
// ignored. Children of a dropped node are promoted to its parent, so only the
// named nodes themselves are excluded.
func FilterByIdentifier(elements []RawElement, ignored []string) []RawElement {
	if len(ignored) == 0 {
		return elements
	}
	ignoreSet := make(map[string]bool, len(ignored))
	for _, id := range ignored {
		if id != "" {
			ignoreSet[id] = true
		}
	}
	return filterRecursive(elements, ignoreSet)
}

func filterRecursive(elements []RawElement, ignoreSet map[string]bool) []RawElement {
	var result []RawElement
	for _, el := range elements {
		var children []RawElement
		if len(el.Children) > 0 {
			children = filterRecursive(el.Children, ignoreSet)
		}

		if el.Identifier != "" && ignoreSet[el.Identifier] {
			// Skip this element, promote its children
			result = append(result, children...)
			continue
		}
		filtered := el
		filtered.Children = children
		result = append(result, filtered)
	}
	return result
}
