// Package golang emits Go structs and string enums with jennifer.
package golang

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/surajcm/gqlpojo/internal/codegen/source"
	"github.com/surajcm/gqlpojo/internal/mapper"
	"github.com/surajcm/gqlpojo/internal/model"
)

// HeaderComment marks every emitted file as generated
const HeaderComment = "Code generated by gqlpojo. DO NOT EDIT."

// HashstructurePath is imported by every struct with fields for Hash
const HashstructurePath = "github.com/mitchellh/hashstructure/v2"

// Generator generates Go code for schema types
type Generator struct {
	mapper *mapper.Mapper
}

// NewGenerator creates a new Go code generator
func NewGenerator(m *mapper.Mapper) *Generator {
	if m == nil {
		m = mapper.New(mapper.GoScalars())
	}
	return &Generator{mapper: m}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".go"
}

type field struct {
	name  string // schema name, used in String output
	ident string
	param string
	typ   jen.Code
	doc   string
}

// EmitType generates a struct with unexported fields, constructors,
// accessors, String, Equal and Hash.
func (g *Generator) EmitType(t *model.TypeDescriptor, namespace string) (*source.Unit, error) {
	pkg, err := packageName(namespace)
	if err != nil {
		return nil, err
	}
	if err := checkTypeName(t.Name()); err != nil {
		return nil, err
	}

	descs := t.Fields()
	names := make([]string, len(descs))
	for i, f := range descs {
		names[i] = f.Name
	}
	if err := checkFields(t.Name(), names); err != nil {
		return nil, err
	}

	m := g.mapperFor(namespace)
	fields := make([]field, len(descs))
	for i, f := range descs {
		ident := fieldIdent(f.Name)
		fields[i] = field{
			name:  f.Name,
			ident: ident,
			param: paramIdent(ident),
			typ:   goType(m.MapFieldType(f)),
			doc:   f.Description,
		}
	}

	f := newFile(pkg)
	s := &structWriter{
		f:      f,
		name:   t.Name(),
		recv:   receiverName(t.Name()),
		fields: fields,
	}
	s.declaration(t.Description())
	s.constructors()
	s.accessors()
	s.stringer()
	s.equal()
	s.hash()

	return g.render(f, namespace, t.Name())
}

// EmitEnum generates a string type with one constant per value
func (g *Generator) EmitEnum(e *model.EnumDescriptor, namespace string) (*source.Unit, error) {
	pkg, err := packageName(namespace)
	if err != nil {
		return nil, err
	}
	if err := checkTypeName(e.Name()); err != nil {
		return nil, err
	}

	values := e.Values()
	consts := make([]jen.Code, len(values))
	cases := make([]jen.Code, len(values))
	for i, v := range values {
		consts[i] = jen.Id(enumConst(e.Name(), v)).Id(e.Name()).Op("=").Lit(v)
		cases[i] = jen.Id(enumConst(e.Name(), v))
	}

	f := newFile(pkg)
	comment(f, e.Description())
	f.Type().Id(e.Name()).String()
	f.Line()
	f.Const().Defs(consts...)
	f.Line()

	var body []jen.Code
	if len(cases) > 0 {
		body = append(body, jen.Switch(jen.Id("e")).Block(
			jen.Case(cases...).Block(jen.Return(jen.True())),
		))
	}
	body = append(body, jen.Return(jen.False()))

	f.Commentf("Valid returns true if the %s is a declared value", e.Name())
	f.Func().Params(jen.Id("e").Id(e.Name())).Id("Valid").Params().Bool().Block(body...)
	f.Line()
	f.Func().Params(jen.Id("e").Id(e.Name())).Id("String").Params().String().Block(
		jen.Return(jen.String().Call(jen.Id("e"))),
	)

	return g.render(f, namespace, e.Name())
}

// Declarations lists the package-level identifiers emitted for d
func (g *Generator) Declarations(d model.Descriptor) []string {
	switch d := d.(type) {
	case *model.TypeDescriptor:
		names := []string{d.Name(), "New" + d.Name()}
		if d.Len() > 0 {
			names = append(names, "New"+d.Name()+"With")
		}
		return names
	case *model.EnumDescriptor:
		names := []string{d.Name()}
		for _, v := range d.Values() {
			names = append(names, enumConst(d.Name(), v))
		}
		return names
	default:
		return nil
	}
}

func enumConst(enum, value string) string {
	return enum + value
}

func (g *Generator) mapperFor(namespace string) *mapper.Mapper {
	if g.mapper.TargetNamespace() == namespace {
		return g.mapper
	}
	m := g.mapper.Clone()
	m.SetTargetNamespace(namespace)
	return m
}

func (g *Generator) render(f *jen.File, namespace, typeName string) (*source.Unit, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", typeName, err)
	}
	return &source.Unit{
		Namespace: namespace,
		TypeName:  typeName,
		Extension: g.FileExtension(),
		Content:   buf.Bytes(),
	}, nil
}

func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment(HeaderComment)
	f.ImportName(HashstructurePath, "hashstructure")
	return f
}

// goType converts a mapped type to jennifer code. User-defined references
// become pointers so recursive types stay representable.
func goType(t mapper.TargetType) jen.Code {
	switch t.Kind {
	case mapper.KindList:
		if t.Elem == nil {
			return jen.Index().Interface()
		}
		return jen.Index().Add(goType(*t.Elem))
	case mapper.KindReference:
		return jen.Op("*").Id(t.Name)
	default:
		if t.Namespace == "" {
			return jen.Id(t.Name)
		}
		return jen.Qual(t.Namespace, t.Name)
	}
}

type commenter interface {
	Comment(string) *jen.Statement
}

func comment(c commenter, doc string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		c.Comment(strings.TrimSpace(line))
	}
}

type structWriter struct {
	f      *jen.File
	name   string
	recv   string
	fields []field
}

func (s *structWriter) self() *jen.Statement {
	return jen.Id(s.recv).Op("*").Id(s.name)
}

func (s *structWriter) declaration(doc string) {
	comment(s.f, doc)
	s.f.Type().Id(s.name).StructFunc(func(group *jen.Group) {
		for _, fd := range s.fields {
			comment(group, fd.doc)
			group.Id(fd.ident).Add(fd.typ)
		}
	})
}

func (s *structWriter) constructors() {
	s.f.Line()
	s.f.Commentf("New%s returns an empty %s.", s.name, s.name)
	s.f.Func().Id("New" + s.name).Params().Op("*").Id(s.name).Block(
		jen.Return(jen.Op("&").Id(s.name).Values()),
	)

	if len(s.fields) == 0 {
		return
	}

	params := make([]jen.Code, len(s.fields))
	values := make([]jen.Code, len(s.fields))
	for i, fd := range s.fields {
		params[i] = jen.Id(fd.param).Add(fd.typ)
		values[i] = jen.Id(fd.ident).Op(":").Id(fd.param)
	}

	s.f.Line()
	s.f.Commentf("New%sWith returns a %s with every field set.", s.name, s.name)
	s.f.Func().Id("New"+s.name+"With").Params(params...).Op("*").Id(s.name).Block(
		jen.Return(jen.Op("&").Id(s.name).Values(values...)),
	)
}

func (s *structWriter) accessors() {
	for _, fd := range s.fields {
		accessor := upperFirst(fd.name)

		s.f.Line()
		s.f.Func().Params(s.self()).Id("Get" + accessor).Params().Add(fd.typ).Block(
			jen.Return(jen.Id(s.recv).Dot(fd.ident)),
		)
		s.f.Line()
		s.f.Func().Params(s.self()).Id("Set" + accessor).Params(jen.Id("v").Add(fd.typ)).Block(
			jen.Id(s.recv).Dot(fd.ident).Op("=").Id("v"),
		)
	}
}

func (s *structWriter) stringer() {
	var body []jen.Code
	body = append(body, jen.If(jen.Id(s.recv).Op("==").Nil()).Block(jen.Return(jen.Lit("<nil>"))))

	if len(s.fields) == 0 {
		body = append(body, jen.Return(jen.Lit(s.name+"{}")))
	} else {
		parts := make([]string, len(s.fields))
		args := []jen.Code{nil}
		for i, fd := range s.fields {
			parts[i] = fd.name + "=%v"
			args = append(args, jen.Id(s.recv).Dot(fd.ident))
		}
		args[0] = jen.Lit(s.name + "{" + strings.Join(parts, ", ") + "}")
		body = append(body, jen.Return(jen.Qual("fmt", "Sprintf").Call(args...)))
	}

	s.f.Line()
	s.f.Func().Params(s.self()).Id("String").Params().String().Block(body...)
}

func (s *structWriter) equal() {
	other := jen.Id("other")
	body := []jen.Code{
		jen.If(jen.Id(s.recv).Op("==").Add(other)).Block(jen.Return(jen.True())),
		jen.If(jen.Id(s.recv).Op("==").Nil().Op("||").Add(other).Op("==").Nil()).Block(jen.Return(jen.False())),
	}

	if len(s.fields) == 0 {
		body = append(body, jen.Return(jen.True()))
	} else {
		var expr *jen.Statement
		for i, fd := range s.fields {
			term := jen.Qual("reflect", "DeepEqual").Call(
				jen.Id(s.recv).Dot(fd.ident),
				jen.Id("other").Dot(fd.ident),
			)
			if i == 0 {
				expr = term
				continue
			}
			expr = expr.Op("&&").Line().Add(term)
		}
		body = append(body, jen.Return(expr))
	}

	s.f.Line()
	s.f.Func().Params(s.self()).Id("Equal").Params(jen.Id("other").Op("*").Id(s.name)).Bool().Block(body...)
}

// hash hashes the field values as one slice; hashstructure skips unexported
// struct fields, so the struct itself cannot be passed. Values that are Equal
// hash the same.
func (s *structWriter) hash() {
	body := []jen.Code{
		jen.If(jen.Id(s.recv).Op("==").Nil()).Block(jen.Return(jen.Lit(0))),
	}

	if len(s.fields) == 0 {
		body = append(body, jen.Return(jen.Lit(0)))
	} else {
		values := make([]jen.Code, len(s.fields))
		for i, fd := range s.fields {
			values[i] = jen.Id(s.recv).Dot(fd.ident)
		}
		body = append(body,
			jen.List(jen.Id("sum"), jen.Id("_")).Op(":=").Qual(HashstructurePath, "Hash").Call(
				jen.Index().Interface().Values(values...),
				jen.Qual(HashstructurePath, "FormatV2"),
				jen.Nil(),
			),
			jen.Return(jen.Id("sum")),
		)
	}

	s.f.Line()
	s.f.Commentf("Hash returns a structural hash of %s; Equal values hash the same.", s.name)
	s.f.Func().Params(s.self()).Id("Hash").Params().Uint64().Block(body...)
}
