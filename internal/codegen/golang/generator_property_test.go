package golang

import (
	"fmt"
	"go/format"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajcm/gqlpojo/internal/mapper"
	"github.com/surajcm/gqlpojo/internal/model"
)

// Test plan for property-based testing:
// 1. Generated Go code is always syntactically valid and gofmt-clean
// 2. Every field appears in the struct and the all-fields constructor, in order
// 3. Each field gets exactly one getter and one setter
// 4. Enum constants follow declaration order
// 5. Large types render without issues
// 6. Hash covers every field in declaration order

var scalarNames = []string{"String", "Int", "Float", "Boolean", "ID", "Long", "Short", "Byte", "BigInteger"}

func randomDescriptor(r *rand.Rand, name string, maxFields int) *model.TypeDescriptor {
	n := r.Intn(maxFields + 1)
	fields := make([]model.FieldDescriptor, n)
	for i := range fields {
		typeName := scalarNames[r.Intn(len(scalarNames))]
		if r.Intn(4) == 0 {
			typeName = fmt.Sprintf("Ref%d", r.Intn(3))
		}
		fields[i] = model.FieldDescriptor{
			Name:             fmt.Sprintf("field%d", i),
			DeclaredTypeName: typeName,
			IsList:           r.Intn(3) == 0,
			IsRequired:       r.Intn(2) == 0,
		}
	}
	return model.NewTypeDescriptor(name, model.Object, fields)
}

func TestGenerator_PropertyBasedValidGo(t *testing.T) {
	// Test: All generated code is valid, formatted Go with every field in order
	r := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		td := randomDescriptor(r, fmt.Sprintf("Random%d", i), 8)
		t.Run(td.Name(), func(t *testing.T) {
			g := NewGenerator(mapper.New(mapper.GoScalars()))
			unit, err := g.EmitType(td, "com.example.testpkg")
			require.NoError(t, err)

			formatted, err := format.Source(unit.Content)
			require.NoError(t, err)
			assert.Equal(t, string(formatted), string(unit.Content))

			p := parseUnit(t, unit)
			require.Len(t, p.fields, td.Len())
			for j, f := range td.Fields() {
				assert.Regexp(t, "^"+f.Name+" ", p.fields[j])
				assert.Contains(t, p.funcs, "Get"+upperFirst(f.Name))
				assert.Contains(t, p.funcs, "Set"+upperFirst(f.Name))
			}

			require.Contains(t, p.funcs, "Hash")
			if td.Len() > 0 {
				assert.Equal(t, p.fields, paramList(p.funcs["New"+td.Name()+"With"]))

				recv := receiverName(td.Name())
				args := make([]string, 0, td.Len())
				for _, f := range td.Fields() {
					args = append(args, recv+"."+fieldIdent(f.Name))
				}
				assert.Contains(t, string(unit.Content), "[]interface{}{"+strings.Join(args, ", ")+"}")
			} else {
				assert.NotContains(t, p.funcs, "New"+td.Name()+"With")
			}
		})
	}
}

func TestGenerator_PropertyBasedEnums(t *testing.T) {
	// Test: Enum constants follow the declared value order
	r := rand.New(rand.NewSource(5))

	for i := 0; i < 20; i++ {
		n := r.Intn(6) + 1
		values := make([]string, n)
		expected := make([]string, n)
		for j := range values {
			values[j] = fmt.Sprintf("V%d_%d", j, r.Intn(100))
			expected[j] = "State" + values[j]
		}

		unit, err := NewGenerator(nil).EmitEnum(model.NewEnumDescriptor("State", values), "com.example.states")
		require.NoError(t, err)

		p := parseUnit(t, unit)
		assert.Equal(t, expected, p.consts)
	}
}

func TestGenerator_PropertyBasedLargeTypes(t *testing.T) {
	// Test: Types with many fields render and parse
	r := rand.New(rand.NewSource(99))

	td := randomDescriptor(r, "Wide", 200)
	unit, err := NewGenerator(nil).EmitType(td, "com.example.wide")
	require.NoError(t, err)

	p := parseUnit(t, unit)
	assert.Len(t, p.fields, td.Len())
}
