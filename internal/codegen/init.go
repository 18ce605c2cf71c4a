package codegen

import (
	"github.com/surajcm/gqlpojo/internal/codegen/golang"
	"github.com/surajcm/gqlpojo/internal/codegen/java"
	"github.com/surajcm/gqlpojo/internal/mapper"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	// Register Java generator
	DefaultRegistry.Register("java", Factory{
		Scalars: mapper.JavaScalars,
		New: func(m *mapper.Mapper) Generator {
			return java.NewGenerator(m)
		},
	})

	// Register Go generator
	DefaultRegistry.Register("go", Factory{
		Scalars: mapper.GoScalars,
		New: func(m *mapper.Mapper) Generator {
			return golang.NewGenerator(m)
		},
	})
}
