package golang

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajcm/gqlpojo/internal/codegen/source"
	"github.com/surajcm/gqlpojo/internal/mapper"
	"github.com/surajcm/gqlpojo/internal/model"
)

const testNamespace = "com.example.generated"

// parsedUnit is a parsed view of emitted Go source
type parsedUnit struct {
	file    *ast.File
	imports []string
	fields  []string // "name type"
	funcs   map[string]*ast.FuncDecl
	consts  []string
}

func parseUnit(t *testing.T, unit *source.Unit) *parsedUnit {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, unit.FileName(), unit.Content, parser.ParseComments|parser.AllErrors)
	require.NoError(t, err, "generated code:\n%s", unit.Content)

	p := &parsedUnit{file: file, funcs: map[string]*ast.FuncDecl{}}
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		p.imports = append(p.imports, path)
	}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			p.funcs[d.Name.Name] = d
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					st, ok := s.Type.(*ast.StructType)
					if !ok {
						continue
					}
					for _, f := range st.Fields.List {
						for _, name := range f.Names {
							p.fields = append(p.fields, name.Name+" "+types.ExprString(f.Type))
						}
					}
				case *ast.ValueSpec:
					for _, name := range s.Names {
						p.consts = append(p.consts, name.Name)
					}
				}
			}
		}
	}
	return p
}

func paramList(fn *ast.FuncDecl) []string {
	var out []string
	for _, f := range fn.Type.Params.List {
		for _, name := range f.Names {
			out = append(out, name.Name+" "+types.ExprString(f.Type))
		}
	}
	return out
}

func newTestGenerator() *Generator {
	m := mapper.New(mapper.GoScalars())
	m.SetTargetNamespace(testNamespace)
	return NewGenerator(m)
}

func TestGenerator_Language(t *testing.T) {
	// Test: Generator reports its language and extension
	g := newTestGenerator()
	assert.Equal(t, "go", g.Language())
	assert.Equal(t, ".go", g.FileExtension())
}

func TestGenerator_EmitType_TempFilm(t *testing.T) {
	// Test: A three-field object renders struct, constructors and accessors in order
	g := newTestGenerator()
	td := model.NewTypeDescriptor("TempFilm", model.Object, []model.FieldDescriptor{
		{Name: "title", DeclaredTypeName: "String"},
		{Name: "episode_id", DeclaredTypeName: "Int"},
		{Name: "genre", DeclaredTypeName: "Genre"},
	})

	unit, err := g.EmitType(td, testNamespace)
	require.NoError(t, err)
	assert.Equal(t, "TempFilm.go", unit.FileName())
	assert.Equal(t, testNamespace, unit.Namespace)

	content := string(unit.Content)
	assert.Contains(t, content, "// "+HeaderComment)
	assert.Contains(t, content, "package generated")

	p := parseUnit(t, unit)
	assert.Equal(t, "generated", p.file.Name.Name)
	assert.Equal(t, []string{"title string", "episode_id int32", "genre *Genre"}, p.fields)
	assert.ElementsMatch(t, []string{"fmt", "reflect", HashstructurePath}, p.imports)

	for _, name := range []string{
		"NewTempFilm", "NewTempFilmWith",
		"GetTitle", "SetTitle",
		"GetEpisode_id", "SetEpisode_id",
		"GetGenre", "SetGenre",
		"String", "Equal", "Hash",
	} {
		assert.Contains(t, p.funcs, name)
	}
	assert.Equal(t,
		[]string{"title string", "episode_id int32", "genre *Genre"},
		paramList(p.funcs["NewTempFilmWith"]))
	assert.Contains(t, content, `"TempFilm{title=%v, episode_id=%v, genre=%v}"`)
	assert.Contains(t, content, "reflect.DeepEqual(t.title, other.title)")
}

func TestGenerator_EmitType_Empty(t *testing.T) {
	// Test: A zero-field type has no all-fields constructor and fixed String/Equal
	g := newTestGenerator()

	unit, err := g.EmitType(model.NewTypeDescriptor("Empty", model.Object, nil), testNamespace)
	require.NoError(t, err)

	p := parseUnit(t, unit)
	assert.Empty(t, p.fields)
	assert.Empty(t, p.imports)
	assert.Contains(t, p.funcs, "NewEmpty")
	assert.NotContains(t, p.funcs, "NewEmptyWith")
	assert.Contains(t, string(unit.Content), `return "Empty{}"`)
	require.Contains(t, p.funcs, "Hash")
	assert.Contains(t, string(unit.Content), "func (e *Empty) Hash() uint64 {\n\tif e == nil {\n\t\treturn 0\n\t}\n\treturn 0\n}")
}

func TestGenerator_EmitType_Hash(t *testing.T) {
	// Test: Hash feeds every field, in order, to hashstructure as one slice
	g := newTestGenerator()
	td := model.NewTypeDescriptor("Film", model.Object, []model.FieldDescriptor{
		{Name: "title", DeclaredTypeName: "String"},
		{Name: "episodes", DeclaredTypeName: "Int", IsList: true},
		{Name: "genre", DeclaredTypeName: "Genre"},
	})

	unit, err := g.EmitType(td, testNamespace)
	require.NoError(t, err)

	p := parseUnit(t, unit)
	hash := p.funcs["Hash"]
	require.NotNil(t, hash)
	assert.Equal(t, "uint64", types.ExprString(hash.Type.Results.List[0].Type))
	assert.Contains(t, string(unit.Content),
		"sum, _ := hashstructure.Hash([]interface{}{f.title, f.episodes, f.genre}, hashstructure.FormatV2, nil)")
}

func TestGenerator_HashAgreesWithEqual(t *testing.T) {
	// Test: Field values that Equal compares as deep-equal produce the same hash,
	// even when slices and pointers are distinct
	hashOf := func(values ...interface{}) uint64 {
		h, err := hashstructure.Hash(values, hashstructure.FormatV2, nil)
		require.NoError(t, err)
		return h
	}

	genre := func(s string) *string { return &s }

	a := []interface{}{"A New Hope", []int32{4, 5}, genre("SCIFI")}
	b := []interface{}{"A New Hope", []int32{4, 5}, genre("SCIFI")}
	require.True(t, reflect.DeepEqual(a, b))
	assert.Equal(t, hashOf(a...), hashOf(b...))

	c := []interface{}{"A New Hope", []int32{5, 4}, genre("SCIFI")}
	assert.NotEqual(t, hashOf(a...), hashOf(c...), "element order inside a list matters")

	d := []interface{}{"A New Hope", []int32(nil), (*string)(nil)}
	e := []interface{}{"A New Hope", []int32(nil), (*string)(nil)}
	assert.Equal(t, hashOf(d...), hashOf(e...))
}

func TestGenerator_EmitEnum(t *testing.T) {
	// Test: Enums become string types with prefixed constants in order
	g := newTestGenerator()

	unit, err := g.EmitEnum(model.NewEnumDescriptor("Genre", []string{"ACTION", "COMEDY"}), testNamespace)
	require.NoError(t, err)

	p := parseUnit(t, unit)
	assert.Equal(t, []string{"GenreACTION", "GenreCOMEDY"}, p.consts)
	assert.Contains(t, p.funcs, "Valid")
	assert.Contains(t, p.funcs, "String")

	content := string(unit.Content)
	assert.Contains(t, content, "type Genre string")
	assert.Contains(t, content, `GenreACTION Genre = "ACTION"`)
	assert.Contains(t, content, "case GenreACTION, GenreCOMEDY:")
}

func TestGenerator_EmitEnum_Empty(t *testing.T) {
	// Test: An enum without values is still valid Go
	g := newTestGenerator()

	unit, err := g.EmitEnum(model.NewEnumDescriptor("Nothing", nil), testNamespace)
	require.NoError(t, err)

	p := parseUnit(t, unit)
	assert.Empty(t, p.consts)
	assert.Contains(t, p.funcs, "Valid")
}

func TestGenerator_EmitType_TypeMapping(t *testing.T) {
	// Test: Lists, references and qualified scalars map to Go types
	m := mapper.New(mapper.GoScalars())
	m.AddScalarMapping("DateTime", mapper.ParseTargetType("time.Time"))
	g := NewGenerator(m)

	td := model.NewTypeDescriptor("Order", model.Object, []model.FieldDescriptor{
		{Name: "total", DeclaredTypeName: "BigDecimal"},
		{Name: "tags", DeclaredTypeName: "String", IsList: true},
		{Name: "lines", DeclaredTypeName: "OrderLine", IsList: true},
		{Name: "placedAt", DeclaredTypeName: "DateTime"},
		{Name: "count", DeclaredTypeName: "Long", IsRequired: true},
	})

	unit, err := g.EmitType(td, "com.shop.orders")
	require.NoError(t, err)

	p := parseUnit(t, unit)
	assert.Equal(t, "orders", p.file.Name.Name)
	assert.Equal(t, []string{
		"total big.Float",
		"tags []string",
		"lines []*OrderLine",
		"placedAt time.Time",
		"count int64",
	}, p.fields)
	assert.Subset(t, p.imports, []string{"math/big", "time"})
}

func TestGenerator_EmitType_FieldNames(t *testing.T) {
	// Test: Fields are unexported and accessors capitalize the first character only
	g := newTestGenerator()

	td := model.NewTypeDescriptor("Book", model.Object, []model.FieldDescriptor{
		{Name: "ISBN", DeclaredTypeName: "String"},
		{Name: "_internal", DeclaredTypeName: "Int"},
		{Name: "string", DeclaredTypeName: "String"},
	})

	unit, err := g.EmitType(td, testNamespace)
	require.NoError(t, err)

	p := parseUnit(t, unit)
	assert.Equal(t, []string{"iSBN string", "_internal int32", "string string"}, p.fields)
	assert.Contains(t, p.funcs, "GetISBN")
	assert.Contains(t, p.funcs, "Get_internal")
	assert.Contains(t, p.funcs, "GetString")
	assert.Equal(t,
		[]string{"iSBN string", "_internal int32", "stringValue string"},
		paramList(p.funcs["NewBookWith"]))
}

func TestGenerator_EmitType_Receiver(t *testing.T) {
	// Test: The receiver never collides with the setter parameter
	g := newTestGenerator()

	td := model.NewTypeDescriptor("Vehicle", model.Object, []model.FieldDescriptor{
		{Name: "wheels", DeclaredTypeName: "Int"},
	})

	unit, err := g.EmitType(td, testNamespace)
	require.NoError(t, err)

	p := parseUnit(t, unit)
	recv := p.funcs["SetWheels"].Recv.List[0].Names[0].Name
	assert.Equal(t, "x", recv)
}

func TestGenerator_InvalidNames(t *testing.T) {
	// Test: Keywords and colliding names are rejected before rendering
	g := newTestGenerator()

	tests := []struct {
		name      string
		td        *model.TypeDescriptor
		namespace string
		kind      string
	}{
		{
			name:      "type keyword",
			td:        model.NewTypeDescriptor("type", model.Object, nil),
			namespace: testNamespace,
			kind:      "type",
		},
		{
			name: "field keyword",
			td: model.NewTypeDescriptor("Thing", model.Object, []model.FieldDescriptor{
				{Name: "func", DeclaredTypeName: "String"},
			}),
			namespace: testNamespace,
			kind:      "field",
		},
		{
			name: "capitalized keyword field",
			td: model.NewTypeDescriptor("Thing", model.Object, []model.FieldDescriptor{
				{Name: "Range", DeclaredTypeName: "String"},
			}),
			namespace: testNamespace,
			kind:      "field",
		},
		{
			name: "colliding fields",
			td: model.NewTypeDescriptor("Book", model.Object, []model.FieldDescriptor{
				{Name: "title", DeclaredTypeName: "String"},
				{Name: "Title", DeclaredTypeName: "String"},
			}),
			namespace: testNamespace,
			kind:      "field",
		},
		{
			name:      "keyword package",
			td:        model.NewTypeDescriptor("Thing", model.Object, nil),
			namespace: "com.example.func",
			kind:      "package",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := g.EmitType(tt.td, tt.namespace)
			assert.Nil(t, unit)

			var idErr *source.IdentifierError
			require.ErrorAs(t, err, &idErr)
			assert.Equal(t, tt.kind, idErr.Kind)
			assert.Equal(t, "go", idErr.Language)
		})
	}
}

func TestGenerator_EmptyNamespace(t *testing.T) {
	// Test: An empty namespace falls back to package model
	g := NewGenerator(nil)

	unit, err := g.EmitEnum(model.NewEnumDescriptor("Color", []string{"RED"}), "")
	require.NoError(t, err)

	p := parseUnit(t, unit)
	assert.Equal(t, "model", p.file.Name.Name)
}

func TestGenerator_Docs(t *testing.T) {
	// Test: Descriptions become Go comments
	g := newTestGenerator()

	td := model.NewTypeDescriptor("User", model.Object, []model.FieldDescriptor{
		{Name: "name", DeclaredTypeName: "String", Description: "Display name"},
	}).WithDescription("User is a registered account\nwith a profile")

	unit, err := g.EmitType(td, testNamespace)
	require.NoError(t, err)

	content := string(unit.Content)
	assert.Contains(t, content, "// User is a registered account\n// with a profile\ntype User struct {")
	assert.Contains(t, content, "// Display name\n")
}

func TestGenerator_Deterministic(t *testing.T) {
	// Test: Emitting twice yields identical bytes
	g := newTestGenerator()
	td := model.NewTypeDescriptor("Pair", model.InputObject, []model.FieldDescriptor{
		{Name: "left", DeclaredTypeName: "Node"},
		{Name: "right", DeclaredTypeName: "Node"},
	})

	first, err := g.EmitType(td, testNamespace)
	require.NoError(t, err)
	second, err := g.EmitType(td, testNamespace)
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
}

func TestGenerator_Declarations(t *testing.T) {
	// Test: Declarations match the top-level names the emitted units declare
	g := newTestGenerator()

	tests := []struct {
		name string
		desc model.Descriptor
		want []string
	}{
		{
			name: "type with fields",
			desc: model.NewTypeDescriptor("Film", model.Object, []model.FieldDescriptor{
				{Name: "title", DeclaredTypeName: "String"},
			}),
			want: []string{"Film", "NewFilm", "NewFilmWith"},
		},
		{
			name: "empty type",
			desc: model.NewTypeDescriptor("Empty", model.Object, nil),
			want: []string{"Empty", "NewEmpty"},
		},
		{
			name: "enum",
			desc: model.NewEnumDescriptor("Genre", []string{"ACTION", "COMEDY"}),
			want: []string{"Genre", "GenreACTION", "GenreCOMEDY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Declarations(tt.desc))

			var unit *source.Unit
			var err error
			switch d := tt.desc.(type) {
			case *model.TypeDescriptor:
				unit, err = g.EmitType(d, testNamespace)
			case *model.EnumDescriptor:
				unit, err = g.EmitEnum(d, testNamespace)
			}
			require.NoError(t, err)

			p := parseUnit(t, unit)
			for _, name := range tt.want {
				declared := p.funcs[name] != nil || slices.Contains(p.consts, name) ||
					strings.Contains(string(unit.Content), "type "+name+" ")
				assert.True(t, declared, "%s is not declared", name)
			}
		})
	}
}
