// Package writer builds indented source text line by line.
package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated source with a current indentation level
type Writer struct {
	sb          strings.Builder
	indentLevel int
	indentUnit  string
	prefix      string
	atLineStart bool
	// trailing counts the newlines at the end of the buffer so BlankLine
	// never has to inspect the whole output.
	trailing int
}

// NewWriter creates a writer that indents with indentUnit per level
func NewWriter(indentUnit string) *Writer {
	return &Writer{
		indentUnit:  indentUnit,
		atLineStart: true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.indentLevel++
	w.prefix = strings.Repeat(w.indentUnit, w.indentLevel)
}

// Dedent decreases the indentation level, never below zero
func (w *Writer) Dedent() {
	if w.indentLevel == 0 {
		return
	}
	w.indentLevel--
	w.prefix = strings.Repeat(w.indentUnit, w.indentLevel)
}

// IndentLevel returns the current indentation level
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// Write writes s without a newline, indenting first if at the start of a line
func (w *Writer) Write(s string) {
	if s == "" {
		return
	}
	if w.atLineStart {
		w.sb.WriteString(w.prefix)
		w.atLineStart = false
	}
	w.sb.WriteString(s)
	w.trailing = 0
}

// Writef writes a formatted string without a newline
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes s followed by a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted line
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline ends the current line
func (w *Writer) Newline() {
	w.sb.WriteByte('\n')
	w.atLineStart = true
	w.trailing++
}

// BlankLine ends the current line if needed and adds one empty line. It is a
// no-op at the start of the output and right after another blank line.
func (w *Writer) BlankLine() {
	if w.sb.Len() == 0 {
		return
	}
	if !w.atLineStart {
		w.Newline()
	}
	if w.trailing < 2 {
		w.Newline()
	}
}

// WriteBlock writes opener, the indented content and closer, each on its own line
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// WriteWrapped writes first on the current indentation and every following
// line indented by extra levels, as a continued statement.
func (w *Writer) WriteWrapped(extra int, first string, rest ...string) {
	w.WriteLine(first)
	for range extra {
		w.Indent()
	}
	for _, line := range rest {
		w.WriteLine(line)
	}
	for range extra {
		w.Dedent()
	}
}

// WriteJavadoc writes doc as a /** ... */ block
func (w *Writer) WriteJavadoc(doc string) {
	lines := docLines(doc)
	if len(lines) == 0 {
		return
	}
	w.WriteLine("/**")
	for _, line := range lines {
		if line == "" {
			w.WriteLine(" *")
			continue
		}
		// "*/" inside a description would end the comment early.
		w.WriteLinef(" * %s", strings.ReplaceAll(line, "*/", "*&#47;"))
	}
	w.WriteLine(" */")
}

// String returns the generated text
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated text as a byte slice
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
