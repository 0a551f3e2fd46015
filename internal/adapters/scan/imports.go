// Package scan extracts module specifiers and type-reference directives from
// script source text. It is a line-oriented lexical scan, not a parser: good
// enough to feed resolution, deliberately blind to anything context-sensitive
// like specifiers built at runtime.
package scan

import (
	"bufio"
	"regexp"
	"strings"

	"go.skein.dev/skein/internal/core/ports"
)

var _ ports.ImportScanner = (*Scanner)(nil)

var (
	fromClauseRe = regexp.MustCompile(`(?:import|export)\b[^"']*\bfrom\s*["']([^"']+)["']`)
	bareImportRe = regexp.MustCompile(`import\s*["']([^"']+)["']`)
	requireRe    = regexp.MustCompile(`\brequire\s*\(\s*["']([^"']+)["']\s*\)`)
	dynImportRe  = regexp.MustCompile(`\bimport\s*\(\s*["']([^"']+)["']\s*\)`)
	typeRefRe    = regexp.MustCompile(`^\s*///\s*<reference\s+types\s*=\s*["']([^"']+)["']`)
)

// Scanner recognizes static imports, re-exports, require calls, dynamic
// imports and triple-slash type-reference directives.
type Scanner struct{}

func NewScanner() *Scanner { return &Scanner{} }

// ScanImports returns the module specifiers referenced by text, first
// occurrence first, each reported once.
func (s *Scanner) ScanImports(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if isLineComment(line) {
			continue
		}
		for _, m := range fromClauseRe.FindAllStringSubmatch(line, -1) {
			add(m[1])
		}
		for _, m := range bareImportRe.FindAllStringSubmatch(line, -1) {
			// Side-effect imports only; from-clause and dynamic forms are
			// already covered and would double-report here.
			if strings.Contains(line, "from") || strings.Contains(m[0], "(") {
				continue
			}
			add(m[1])
		}
		for _, m := range requireRe.FindAllStringSubmatch(line, -1) {
			add(m[1])
		}
		for _, m := range dynImportRe.FindAllStringSubmatch(line, -1) {
			add(m[1])
		}
	}
	return out
}

// ScanTypeRefs returns the names of triple-slash type-reference directives,
// first occurrence first, each reported once. Directives only count at the
// start of a line, matching how script tooling treats them.
func (s *Scanner) ScanTypeRefs(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		m := typeRefRe.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

// isLineComment reports whether the line is a plain // comment. Triple-slash
// directives are not plain comments and are handled separately.
func isLineComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "///")
}
