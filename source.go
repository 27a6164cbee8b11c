package dbg

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// sourceFile is a parsed Go file kept for recovering argument text.
type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

var sources = cmap.New[*sourceFile]()

func loadSource(path string) *sourceFile {
	if sf, ok := sources.Get(path); ok {
		return sf
	}
	sf := &sourceFile{fset: token.NewFileSet()}
	sf.src, sf.err = os.ReadFile(path)
	if sf.err == nil {
		sf.file, sf.err = parser.ParseFile(sf.fset, path, sf.src, parser.SkipObjectResolution)
	}
	sources.Set(path, sf)
	return sf
}

// sourceFields names values after the argument expressions of the call to
// fn made by the frame skip levels above sourceFields. When the source cannot
// be read or the call cannot be found, values are named arg0, arg1 and so on.
func sourceFields(skip int, fn string, values []any) []Field {
	path, line := caller(skip)
	names := argNames(path, line, fn, len(values))
	fields := make([]Field, len(values))
	for i, v := range values {
		name := "arg" + strconv.Itoa(i)
		if names != nil {
			name = names[i]
		}
		fields[i] = Field{Name: name, Value: v}
	}
	return fields
}

func argNames(path string, line int, fn string, n int) []string {
	if path == "" {
		return nil
	}
	sf := loadSource(path)
	if sf.err != nil {
		return nil
	}
	call := findCall(sf, line, fn, n)
	if call == nil {
		return nil
	}
	tf := sf.fset.File(call.Pos())
	names := make([]string, n)
	for i, arg := range call.Args {
		text := string(sf.src[tf.Offset(arg.Pos()):tf.Offset(arg.End())])
		names[i] = strings.Join(strings.Fields(text), " ")
	}
	return names
}

// findCall returns the call of fn with n plain arguments whose opening
// parenthesis is on line, falling back to a call spanning line.
func findCall(sf *sourceFile, line int, fn string, n int) *ast.CallExpr {
	var exact, spanning *ast.CallExpr
	ast.Inspect(sf.file, func(node ast.Node) bool {
		if exact != nil {
			return false
		}
		call, ok := node.(*ast.CallExpr)
		if !ok || call.Ellipsis.IsValid() || len(call.Args) != n || calleeName(call.Fun) != fn {
			return true
		}
		start := sf.fset.Position(call.Lparen).Line
		end := sf.fset.Position(call.Rparen).Line
		switch {
		case start == line:
			exact = call
		case start <= line && line <= end && spanning == nil:
			spanning = call
		}
		return true
	})
	if exact != nil {
		return exact
	}
	return spanning
}

func calleeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		return calleeName(e.X)
	}
	return ""
}
