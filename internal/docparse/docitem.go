package docparse

// docItem is a parsed documentation item (parameter, return value,
// raised exception) shared by the Google and NumPy docstring dialects
// before they're converted into ast.Node payloads.
type docItem struct {
	name        string
	itemType    *string
	description *string
}

func newDocItem(name string, itemType, description *string) docItem {
	return docItem{name: name, itemType: itemType, description: description}
}

// appendToDescription folds a continuation line into an item's
// description, space-joining onto any existing text.
func appendToDescription(item *docItem, text string) {
	if item.description != nil {
		joined := *item.description + " " + text
		item.description = &joined
		return
	}
	if text != "" {
		item.description = &text
	}
}
