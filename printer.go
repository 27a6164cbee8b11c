package dbg

import (
	"io"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Printer writes debug records to a writer.
//
// A Printer holds no lock. Each record reaches the writer in a single Write
// call, but concurrent callers sharing a writer must synchronize themselves.
// Write errors are ignored.
type Printer struct {
	w   io.Writer
	cfg Config
}

// NewPrinter returns a Printer writing to w. The config is used as given;
// call [Config.Validate] first if it comes from user input.
func NewPrinter(w io.Writer, cfg Config) *Printer {
	return &Printer{w: w, cfg: cfg}
}

// Sprint renders v using the printer's indent.
func (p *Printer) Sprint(v any) string {
	text, _ := p.render(v)
	return text
}

// render returns the rendering of v and whether its layout spans several
// lines. Line breaks inside scalar text do not count.
func (p *Printer) render(v any) (string, bool) {
	r := renderer{indent: p.cfg.Indent}
	text := r.value(reflect.ValueOf(v))
	return text, r.multi
}

// Names writes one record pairing the comma-separated expressions in names
// with values. See [Fields] for how names are split.
func (p *Printer) Names(names string, values ...any) {
	p.emit(2, Fields(names, values...))
}

// Print writes one record naming each value after the source text of the
// matching argument in the calling statement, so p.Print(x, len(xs)) prints
// "x = ... | len(xs) = ...". Values are named arg0, arg1 and so on when the
// caller's source file is not readable.
func (p *Printer) Print(values ...any) {
	p.emit(2, sourceFields(2, "Print", values))
}

// Fields writes one record of explicitly named values.
func (p *Printer) Fields(fields ...Field) {
	p.emit(2, fields)
}

// NL writes an empty line.
func (p *Printer) NL() {
	_, _ = io.WriteString(p.w, "\n")
}

// Sep writes a separator line as configured by SepWidth and SepChar.
func (p *Printer) Sep() {
	p.SepWith(p.cfg.SepWidth, p.cfg.sepRune())
}

// SepWith writes a line of char spanning width display columns. Wide
// characters count for their display width.
func (p *Printer) SepWith(width int, char rune) {
	_, _ = io.WriteString(p.w, rule(width, char)+"\n")
}

// emit writes a record for a caller skip frames above emit.
func (p *Printer) emit(skip int, fields []Field) {
	_, _ = io.WriteString(p.w, p.record(p.tag(skip+1), fields))
}

// tag formats the location prefix for the caller skip frames above tag.
func (p *Printer) tag(skip int) string {
	switch p.cfg.Tag {
	case TagNone:
		return ""
	case TagFile:
		file, line := caller(skip)
		return "[" + filepath.Base(file) + ":" + strconv.Itoa(line) + "] "
	default:
		_, line := caller(skip)
		return "[" + strconv.Itoa(line) + "] "
	}
}

func rule(width int, char rune) string {
	if width <= 0 {
		return ""
	}
	cw := runewidth.RuneWidth(char)
	if cw < 1 {
		cw = 1
	}
	return strings.Repeat(string(char), width/cw)
}
