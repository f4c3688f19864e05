package nav

// Translate replaces node titles found in the per-locale translation
// table, recursing into children. The replacement is a single map lookup
// per node: a title that translates into another table key is not
// translated a second time.
func Translate(nodes []*Node, table map[string]string) {
	if len(table) == 0 {
		return
	}
	for _, node := range nodes {
		if translated, ok := table[node.Title]; ok {
			node.Title = translated
		}
		if len(node.Children) > 0 {
			Translate(node.Children, table)
		}
	}
}
