package wordcase

import (
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"sort"
	"testing"
)

func parseFuncs(t *testing.T, filename string) []string {
	fset := token.NewFileSet()
	af, err := parser.ParseFile(fset, filename, nil, parser.AllErrors)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range af.Decls {
		if fd, _ := d.(*ast.FuncDecl); fd != nil {
			if fd.Name == nil || fd.Recv != nil {
				continue
			}
			name := fd.Name.Name
			if ast.IsExported(name) {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Test that the wordcase and bytcase packages have the same conversions
func TestPackageParity(t *testing.T) {
	for _, files := range [][2]string{
		{"wordcase.go", "bytcase/bytcase.go"},
		{"transform.go", "bytcase/transform.go"},
	} {
		strnames := parseFuncs(t, files[0])
		bytenames := parseFuncs(t, files[1])
		if files[0] == "transform.go" {
			// bytcase adds Append and Convert for Conventions
			bytenames = remove(bytenames, "Append", "Convert")
		}
		if !reflect.DeepEqual(strnames, bytenames) {
			t.Fatalf("The API of the wordcase and bytcase packages differs:\n"+
				"wordcase: %q\n"+
				"bytcase:  %q\n", strnames, bytenames)
		}
	}
}

func remove(a []string, names ...string) []string {
	var out []string
	for _, s := range a {
		keep := true
		for _, n := range names {
			if s == n {
				keep = false
			}
		}
		if keep {
			out = append(out, s)
		}
	}
	return out
}
