package model

import "strings"

// CommitEdit resolves an inline edit: the trimmed input wins unless it is
// empty, in which case the previous value is kept.
func CommitEdit(previous, input string) string {
	if v := strings.TrimSpace(input); v != "" {
		return v
	}
	return previous
}
