package dbg

import "strings"

// Field is one labelled value of a debug record.
type Field struct {
	Name  string
	Value any
}

// Fields pairs the comma-separated expressions in names with values, left to
// right. Commas inside brackets, braces, parentheses or quotes do not split,
// so "f(a, b), x" names two values.
//
// Names and values are not checked against each other: when their counts
// differ the surplus on the longer side is dropped.
func Fields(names string, values ...any) []Field {
	split := splitNames(names)
	n := min(len(split), len(values))
	fields := make([]Field, n)
	for i := range n {
		fields[i] = Field{Name: split[i], Value: values[i]}
	}
	return fields
}

func splitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var (
		names []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch {
			case c == '\\' && quote != '`':
				i++
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				names = append(names, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(names, strings.TrimSpace(s[start:]))
}

// record formats fields as one diagnostic record. A value laid out on one
// line is followed by " | " and a multi-line block by a line break, so blocks
// never share a line with the next name. The record ends with a line break.
func (p *Printer) record(tag string, fields []Field) string {
	var b strings.Builder
	b.WriteString(tag)
	for i, f := range fields {
		text, multi := p.render(f.Value)
		b.WriteString(f.Name)
		b.WriteString(" = ")
		b.WriteString(text)
		switch {
		case i == len(fields)-1:
		case multi:
			b.WriteByte('\n')
		default:
			b.WriteString(" | ")
		}
	}
	b.WriteByte('\n')
	return b.String()
}
