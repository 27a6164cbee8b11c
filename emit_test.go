package dbg_test

import (
	"bytes"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/dbg"
)

func newPrinter(tag dbg.Tag) (*dbg.Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := dbg.DefaultConfig()
	cfg.Tag = tag
	return dbg.NewPrinter(&buf, cfg), &buf
}

func TestFields(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		names  string
		values []any
		want   []dbg.Field
	}{
		"matched": {
			names:  "x, y",
			values: []any{1, "a"},
			want:   []dbg.Field{{Name: "x", Value: 1}, {Name: "y", Value: "a"}},
		},
		"extra names dropped": {
			names:  "a, b, c",
			values: []any{1},
			want:   []dbg.Field{{Name: "a", Value: 1}},
		},
		"extra values dropped": {
			names:  "a",
			values: []any{1, 2},
			want:   []dbg.Field{{Name: "a", Value: 1}},
		},
		"nested commas": {
			names:  `f(a, b), m["x,y"], []int{1, 2}`,
			values: []any{1, 2, 3},
			want: []dbg.Field{
				{Name: "f(a, b)", Value: 1},
				{Name: `m["x,y"]`, Value: 2},
				{Name: "[]int{1, 2}", Value: 3},
			},
		},
		"no names": {
			names:  "  ",
			values: []any{1},
			want:   []dbg.Field{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, dbg.Fields(tc.names, tc.values...))
		})
	}
}

func TestPrinterNames(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		names  string
		values []any
		want   string
	}{
		"single-line values": {
			names:  "x, y",
			values: []any{3, "hi"},
			want:   "x = 3 | y = hi\n",
		},
		"multi-line value breaks the record": {
			names:  "m, n",
			values: []any{[][]int{{1}, {2}}, 5},
			want:   "m = [\n  [1],\n  [2]\n]\nn = 5\n",
		},
		"multi-line value last": {
			names:  "n, m",
			values: []any{5, map[string][]int{"k": {1}}},
			want:   "n = 5 | m = {\n  k: [1]\n}\n",
		},
		"adjacent blocks": {
			names:  "a, b",
			values: []any{[][]int{{1}}, [][]int{{2}}},
			want:   "a = [\n  [1]\n]\nb = [\n  [2]\n]\n",
		},
		"newline inside a scalar": {
			names:  "s, n",
			values: []any{"a\nb", 1},
			want:   "s = a\nb | n = 1\n",
		},
		"array of blocks": {
			names:  "a, n",
			values: []any{[1][][]int{{{1}}}, 2},
			want:   "a = [[\n  [1]\n]]\nn = 2\n",
		},
		"arity mismatch": {
			names:  "a, b, c",
			values: []any{1},
			want:   "a = 1\n",
		},
		"unsupported value": {
			names:  "ch, n",
			values: []any{make(chan int), 1},
			want:   "ch = <unsupported chan int> | n = 1\n",
		},
		"empty record": {
			names: "",
			want:  "\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p, buf := newPrinter(dbg.TagNone)
			p.Names(tc.names, tc.values...)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrinterPrint(t *testing.T) {
	t.Parallel()
	p, buf := newPrinter(dbg.TagNone)
	x := 3
	xs := []int{1, 2}

	p.Print(x, len(xs))
	assert.Equal(t, "x = 3 | len(xs) = 2\n", buf.String())

	buf.Reset()
	p.Print(x+1, xs)
	assert.Equal(t, "x+1 = 4 | xs = [1, 2]\n", buf.String())

	buf.Reset()
	p.Print(
		x,
		map[string]int{"a": 1},
	)
	assert.Equal(t, `x = 3 | map[string]int{"a": 1} = {a: 1}`+"\n", buf.String())
}

func TestPrinterFields(t *testing.T) {
	t.Parallel()
	p, buf := newPrinter(dbg.TagNone)
	p.Fields(dbg.Field{Name: "a", Value: 1}, dbg.Field{Name: "b c", Value: []int{2}})
	assert.Equal(t, "a = 1 | b c = [2]\n", buf.String())
}

func TestPrinterTags(t *testing.T) {
	t.Parallel()

	lp, lbuf := newPrinter(dbg.TagLine)
	_, _, line, _ := runtime.Caller(0)
	lp.Names("x", 1)
	assert.Equal(t, "["+strconv.Itoa(line+1)+"] x = 1\n", lbuf.String())

	fp, fbuf := newPrinter(dbg.TagFile)
	_, _, line, _ = runtime.Caller(0)
	fp.Print(line)
	assert.Equal(t, "[emit_test.go:"+strconv.Itoa(line+1)+"] line = "+strconv.Itoa(line)+"\n", fbuf.String())
}

func TestPrinterLines(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		write func(p *dbg.Printer)
		want  string
	}{
		"newline": {
			write: func(p *dbg.Printer) { p.NL() },
			want:  "\n",
		},
		"configured separator": {
			write: func(p *dbg.Printer) { p.Sep() },
			want:  "==========\n",
		},
		"custom separator": {
			write: func(p *dbg.Printer) { p.SepWith(4, '*') },
			want:  "****\n",
		},
		"wide separator": {
			write: func(p *dbg.Printer) { p.SepWith(5, '你') },
			want:  "你你\n",
		},
		"zero width": {
			write: func(p *dbg.Printer) { p.SepWith(0, '-') },
			want:  "\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			cfg := dbg.Config{Indent: "  ", Tag: dbg.TagNone, SepWidth: 10, SepChar: "="}
			tc.write(dbg.NewPrinter(&buf, cfg))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestPrinterIgnoresWriteErrors(t *testing.T) {
	t.Parallel()
	p := dbg.NewPrinter(errWriter{}, dbg.DefaultConfig())
	assert.NotPanics(t, func() {
		p.Names("x", 1)
		p.Sep()
		p.NL()
	})
}
