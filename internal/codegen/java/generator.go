// Package java emits plain Java value classes and enums.
package java

import (
	"fmt"
	"strings"

	"github.com/surajcm/gqlpojo/internal/codegen/source"
	"github.com/surajcm/gqlpojo/internal/codegen/writer"
	"github.com/surajcm/gqlpojo/internal/mapper"
	"github.com/surajcm/gqlpojo/internal/model"
)

const indentUnit = "    "

// Generator generates Java source for schema types
type Generator struct {
	mapper *mapper.Mapper
}

// NewGenerator creates a Java generator that resolves field types through m
func NewGenerator(m *mapper.Mapper) *Generator {
	if m == nil {
		m = mapper.New(mapper.JavaScalars())
	}
	return &Generator{mapper: m}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "java"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return ".java"
}

// field is a descriptor field with its resolved Java type
type field struct {
	name     string
	typeName string
	doc      string
}

// EmitType generates a value class with fields, constructors, accessors,
// toString, equals and hashCode.
func (g *Generator) EmitType(t *model.TypeDescriptor, namespace string) (*source.Unit, error) {
	if err := checkTypeName(t.Name()); err != nil {
		return nil, err
	}

	m := g.mapperFor(namespace)
	imports := newImportSet(namespace, t.Name())

	descs := t.Fields()
	targets := make([]mapper.TargetType, len(descs))
	for i, f := range descs {
		if err := checkMemberName("field", f.Name, t.Name()); err != nil {
			return nil, err
		}
		targets[i] = m.MapFieldType(f)
		imports.useType(targets[i])
	}
	if len(descs) > 0 {
		imports.use(utilPackage, "Objects")
	}

	fields := make([]field, len(descs))
	for i, f := range descs {
		fields[i] = field{
			name:     f.Name,
			typeName: imports.typeName(targets[i]),
			doc:      f.Description,
		}
	}

	w := writer.NewWriter(indentUnit)
	writeHeader(w, namespace, imports.lines())
	w.WriteJavadoc(t.Description())

	c := &classWriter{
		w:       w,
		name:    t.Name(),
		fields:  fields,
		objects: imports.ref(utilPackage, "Objects"),
	}
	w.WriteBlock(fmt.Sprintf("public class %s {", t.Name()), "}", c.body)

	return &source.Unit{
		Namespace: namespace,
		TypeName:  t.Name(),
		Extension: g.FileExtension(),
		Content:   w.Bytes(),
	}, nil
}

// EmitEnum generates an enum whose constants are the values in declared order
func (g *Generator) EmitEnum(e *model.EnumDescriptor, namespace string) (*source.Unit, error) {
	if err := checkTypeName(e.Name()); err != nil {
		return nil, err
	}
	values := e.Values()
	for _, v := range values {
		if err := checkMemberName("enum value", v, e.Name()); err != nil {
			return nil, err
		}
	}

	w := writer.NewWriter(indentUnit)
	writeHeader(w, namespace, nil)
	w.WriteJavadoc(e.Description())
	w.WriteBlock(fmt.Sprintf("public enum %s {", e.Name()), "}", func() {
		for i, v := range values {
			if i < len(values)-1 {
				w.WriteLine(v + ",")
				continue
			}
			w.WriteLine(v)
		}
	})

	return &source.Unit{
		Namespace: namespace,
		TypeName:  e.Name(),
		Extension: g.FileExtension(),
		Content:   w.Bytes(),
	}, nil
}

// mapperFor returns a mapper whose references resolve into namespace. The
// shared mapper is never reconfigured; a differing namespace gets a clone.
func (g *Generator) mapperFor(namespace string) *mapper.Mapper {
	if g.mapper.TargetNamespace() == namespace {
		return g.mapper
	}
	m := g.mapper.Clone()
	m.SetTargetNamespace(namespace)
	return m
}

func writeHeader(w *writer.Writer, namespace string, imports []string) {
	if namespace != "" {
		w.WriteLinef("package %s;", namespace)
		w.BlankLine()
	}
	for _, imp := range imports {
		w.WriteLinef("import %s;", imp)
	}
	if len(imports) > 0 {
		w.BlankLine()
	}
}

// classWriter writes the members of one class, separated by blank lines
type classWriter struct {
	w       *writer.Writer
	name    string
	fields  []field
	objects string
}

func (c *classWriter) body() {
	for _, f := range c.fields {
		c.w.WriteJavadoc(f.doc)
		c.w.WriteLinef("private %s %s;", f.typeName, f.name)
		c.w.BlankLine()
	}

	c.w.WriteBlock(fmt.Sprintf("public %s() {", c.name), "}", func() {})

	if len(c.fields) > 0 {
		c.w.BlankLine()
		c.allArgsConstructor()
	}

	for _, f := range c.fields {
		c.w.BlankLine()
		c.accessors(f)
	}

	c.w.BlankLine()
	c.toString()
	c.w.BlankLine()
	c.equals()
	c.w.BlankLine()
	c.hashCode()
}

func (c *classWriter) allArgsConstructor() {
	params := make([]string, len(c.fields))
	for i, f := range c.fields {
		params[i] = f.typeName + " " + f.name
	}
	c.w.WriteBlock(fmt.Sprintf("public %s(%s) {", c.name, strings.Join(params, ", ")), "}", func() {
		for _, f := range c.fields {
			c.w.WriteLinef("this.%s = %s;", f.name, f.name)
		}
	})
}

func (c *classWriter) accessors(f field) {
	c.w.WriteBlock(fmt.Sprintf("public %s %s() {", f.typeName, GetterName(f.name)), "}", func() {
		c.w.WriteLinef("return %s;", f.name)
	})
	c.w.BlankLine()
	c.w.WriteBlock(fmt.Sprintf("public void %s(%s %s) {", SetterName(f.name), f.typeName, f.name), "}", func() {
		c.w.WriteLinef("this.%s = %s;", f.name, f.name)
	})
}

func (c *classWriter) toString() {
	c.w.WriteLine("@Override")
	c.w.WriteBlock("public String toString() {", "}", func() {
		if len(c.fields) == 0 {
			c.w.WriteLinef("return %q;", c.name+"{}")
			return
		}
		rest := make([]string, 0, len(c.fields)+1)
		for i, f := range c.fields {
			sep := ""
			if i > 0 {
				sep = ", "
			}
			rest = append(rest, fmt.Sprintf("%q + %s +", sep+f.name+"=", f.name))
		}
		rest = append(rest, `"}";`)
		c.w.WriteWrapped(2, fmt.Sprintf("return %q +", c.name+"{"), rest...)
	})
}

func (c *classWriter) equals() {
	c.w.WriteLine("@Override")
	c.w.WriteBlock("public boolean equals(Object o) {", "}", func() {
		c.w.WriteLine("if (this == o) return true;")
		c.w.WriteLine("if (o == null || getClass() != o.getClass()) return false;")
		if len(c.fields) == 0 {
			c.w.WriteLine("return true;")
			return
		}
		c.w.WriteLinef("%s that = (%s) o;", c.name, c.name)
		terms := make([]string, len(c.fields))
		for i, f := range c.fields {
			terms[i] = fmt.Sprintf("%s.equals(this.%s, that.%s)", c.objects, f.name, f.name)
		}
		for i := range terms[:len(terms)-1] {
			terms[i] += " &&"
		}
		terms[len(terms)-1] += ";"
		c.w.WriteWrapped(2, "return "+terms[0], terms[1:]...)
	})
}

func (c *classWriter) hashCode() {
	c.w.WriteLine("@Override")
	c.w.WriteBlock("public int hashCode() {", "}", func() {
		if len(c.fields) == 0 {
			c.w.WriteLine("return 0;")
			return
		}
		names := make([]string, len(c.fields))
		for i, f := range c.fields {
			names[i] = f.name
		}
		c.w.WriteLinef("return %s.hash(%s);", c.objects, strings.Join(names, ", "))
	})
}
