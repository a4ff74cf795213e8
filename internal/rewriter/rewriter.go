// Package rewriter applies tailsort formatting to JS/TS/JSX source files.
package rewriter

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"tailsort/internal/config"
	"tailsort/internal/formatter"
)

// RewriteErrorType represents the type of rewrite error.
type RewriteErrorType string

const (
	// ReadFailed indicates the source file could not be read.
	ReadFailed RewriteErrorType = "READ_FAILED"
	// ParseFailed indicates the source text could not be scanned, e.g. an
	// unterminated string or comment.
	ParseFailed RewriteErrorType = "PARSE_FAILED"
	// WriteFailed indicates the rewritten source could not be written back.
	WriteFailed RewriteErrorType = "WRITE_FAILED"
)

// RewriteError represents a per-file failure. One file's error never affects
// the processing of another file.
type RewriteError struct {
	Type RewriteErrorType
	Path string
	Err  error
}

func (e *RewriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}

// Mode selects how class values are written back.
type Mode int

const (
	// ModeFormat rewrites class strings in place.
	ModeFormat Mode = iota
	// ModeMerge replaces class strings with merge-helper calls taking one
	// argument per group chunk.
	ModeMerge
)

// Options configures a Rewriter.
type Options struct {
	Format config.FormatOptions
	Mode   Mode
	// Preview suppresses all writes; results still report what would change.
	Preview bool
}

// Result describes the outcome of processing one file.
type Result struct {
	Path    string
	Changed bool // output differs from input
	Written bool // file was written back (false in preview mode)
}

// Rewriter rewrites source files. It holds only immutable configuration and
// is safe for concurrent use.
type Rewriter struct {
	opts Options
}

// New creates a Rewriter with the given options.
func New(opts Options) *Rewriter {
	return &Rewriter{opts: opts}
}

// ProcessFile rewrites a single file on disk, honoring preview mode.
func (r *Rewriter) ProcessFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &RewriteError{Type: ReadFailed, Path: path, Err: err}
	}

	output, changed, err := r.Process(string(data))
	if err != nil {
		return nil, &RewriteError{Type: ParseFailed, Path: path, Err: err}
	}

	result := &Result{Path: path, Changed: changed}
	if !changed || r.opts.Preview {
		return result, nil
	}

	info, err := os.Stat(path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(output), mode); err != nil {
		return nil, &RewriteError{Type: WriteFailed, Path: path, Err: err}
	}
	result.Written = true
	return result, nil
}

// edit replaces src[start:end) with text.
type edit struct {
	start int
	end   int
	text  string
}

// Process transforms source text and reports whether it changed. It is pure:
// the same source and options always produce the same output.
func (r *Rewriter) Process(src string) (string, bool, error) {
	sites, err := scanSites(src)
	if err != nil {
		return "", false, err
	}

	var edits []edit
	needImport := false

	helper := inScopeHelper(src)
	callee := helper
	if callee == "" {
		callee = DefaultHelper
	}

	for _, st := range sites {
		if st.attr != nil {
			if r.opts.Mode == ModeMerge {
				e, used := r.mergeAttrEdit(src, st, callee)
				if used && helper == "" {
					needImport = true
				}
				if e != nil {
					edits = append(edits, *e)
				}
				continue
			}
			if e := r.formatLitEdit(*st.attr); e != nil {
				edits = append(edits, *e)
			}
			continue
		}

		// Call site.
		if r.opts.Mode == ModeMerge {
			if e := r.mergeCallEdit(src, st); e != nil {
				edits = append(edits, *e)
			}
			continue
		}
		for _, arg := range st.args {
			if arg.lit == nil {
				continue
			}
			if e := r.formatLitEdit(*arg.lit); e != nil {
				edits = append(edits, *e)
			}
		}
	}

	if needImport {
		edits = append(edits, importEdit(src))
	}

	if len(edits) == 0 {
		return src, false, nil
	}

	output := applyEdits(src, edits)
	return output, output != src, nil
}

// formatLitEdit formats one class literal in place and returns the edit, or
// nil when the literal is already canonical.
func (r *Rewriter) formatLitEdit(lit stringLit) *edit {
	formatted := formatter.Format(lit.value, r.opts.Format)
	if formatted == lit.value {
		return nil
	}
	return &edit{start: lit.start + 1, end: lit.end - 1, text: formatted}
}

// mergeAttrEdit replaces a literal attribute value with a helper call taking
// one argument per group chunk. The second return reports whether the helper
// was actually used.
func (r *Rewriter) mergeAttrEdit(src string, st site, callee string) (*edit, bool) {
	chunks := formatter.FormatGrouped(st.attr.value, r.opts.Format)
	if len(chunks) == 0 {
		return nil, false
	}

	quote := string(st.attr.quote)
	args := make([]string, len(chunks))
	for i, chunk := range chunks {
		args[i] = quote + chunk + quote
	}
	call := callee + "(" + strings.Join(args, ", ") + ")"

	start, end := st.attr.start, st.attr.end
	if st.braced {
		start, end = st.opens, st.closes+1
	}
	replacement := "{" + call + "}"

	if src[start:end] == replacement {
		return nil, true
	}
	return &edit{start: start, end: end, text: replacement}, true
}

// mergeCallEdit regroups the string-literal arguments of an existing
// merge-helper call: the chunks replace the first string literal's position,
// later string literals are dropped, and every non-string argument keeps its
// original relative position.
func (r *Rewriter) mergeCallEdit(src string, st site) *edit {
	var parts []string
	quote := byte('"')
	sawLit := false
	for _, arg := range st.args {
		if arg.lit == nil {
			continue
		}
		if !sawLit {
			quote = arg.lit.quote
			sawLit = true
		}
		parts = append(parts, arg.lit.value)
	}
	if !sawLit {
		return nil
	}

	chunks := formatter.FormatGrouped(strings.Join(parts, " "), r.opts.Format)

	var rebuilt []string
	inserted := false
	for _, arg := range st.args {
		if arg.lit == nil {
			rebuilt = append(rebuilt, strings.TrimSpace(src[arg.start:arg.end]))
			continue
		}
		if inserted {
			continue
		}
		inserted = true
		q := string(quote)
		for _, chunk := range chunks {
			rebuilt = append(rebuilt, q+chunk+q)
		}
	}

	replacement := strings.Join(rebuilt, ", ")
	if src[st.lparen+1:st.rparen] == replacement {
		return nil
	}
	return &edit{start: st.lparen + 1, end: st.rparen, text: replacement}
}

var (
	importBindingRe = regexp.MustCompile(`(?m)^\s*import\s+(?:([A-Za-z_$][\w$]*)\s*,?\s*)?(?:\{([^}]*)\})?\s*from\s*['"]`)
	requireRe       = regexp.MustCompile(`(?m)\b(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*require\s*\(`)
	importStmtRe    = regexp.MustCompile(`(?m)^import\b[^\n]*$`)
)

// inScopeHelper returns the name of a recognized merge helper already bound
// in the file, or "" when none is.
func inScopeHelper(src string) string {
	for _, m := range importBindingRe.FindAllStringSubmatch(src, -1) {
		if isMergeHelper(m[1]) {
			return m[1]
		}
		for _, named := range strings.Split(m[2], ",") {
			name := strings.TrimSpace(named)
			// import { clsx as cn } binds the local name.
			if i := strings.LastIndex(name, " as "); i >= 0 {
				name = strings.TrimSpace(name[i+4:])
			}
			if isMergeHelper(name) {
				return name
			}
		}
	}
	for _, m := range requireRe.FindAllStringSubmatch(src, -1) {
		if isMergeHelper(m[1]) {
			return m[1]
		}
	}
	return ""
}

// importEdit synthesizes the default-helper import, placed after the last
// top-level import statement or at the top of the file.
func importEdit(src string) edit {
	stmt := `import ` + DefaultHelper + ` from "` + DefaultHelperModule + `";`

	locs := importStmtRe.FindAllStringIndex(src, -1)
	if len(locs) == 0 {
		return edit{start: 0, end: 0, text: stmt + "\n"}
	}
	last := locs[len(locs)-1][1]
	return edit{start: last, end: last, text: "\n" + stmt}
}

// applyEdits splices non-overlapping edits into src.
func applyEdits(src string, edits []edit) string {
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].start < edits[j].start
	})

	var b strings.Builder
	prev := 0
	for _, e := range edits {
		if e.start < prev {
			continue // overlapping edit, keep the earlier one
		}
		b.WriteString(src[prev:e.start])
		b.WriteString(e.text)
		prev = e.end
	}
	b.WriteString(src[prev:])
	return b.String()
}
