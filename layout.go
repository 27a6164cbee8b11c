package dbg

import "strings"

// inline joins items on one line between opener and closer.
func inline(opener, closer string, items []string) string {
	return opener + strings.Join(items, ", ") + closer
}

// block lays items out one per line when multi is set: opener and closer on
// their own lines, each item indented and comma-terminated except the last.
// Nested blocks are shifted by one indent. An empty block stays on one line.
func (r *renderer) block(opener, closer string, items []string, multi bool) string {
	if !multi || len(items) == 0 {
		return inline(opener, closer, items)
	}
	r.multi = true
	var b strings.Builder
	b.WriteString(opener)
	b.WriteByte('\n')
	for i, item := range items {
		b.WriteString(r.indent)
		b.WriteString(strings.ReplaceAll(item, "\n", "\n"+r.indent))
		if i < len(items)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(closer)
	return b.String()
}
