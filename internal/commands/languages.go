package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/surajcm/gqlpojo/internal/codegen"
	"github.com/surajcm/gqlpojo/internal/schema"
)

// Languages prints the registered target languages and parser backends
func (c *Controller) Languages(ctx context.Context) error {
	return printLanguages(os.Stdout, codegen.DefaultRegistry)
}

func printLanguages(w io.Writer, registry *codegen.Registry) error {
	fmt.Fprintln(w, "Languages:")
	for _, lang := range registry.Languages() {
		gen, err := registry.Get(lang, codegen.Options{})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-6s %s\n", lang, gen.FileExtension())
	}
	fmt.Fprintln(w, "Parsers:")
	for _, name := range schema.Parsers() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}
