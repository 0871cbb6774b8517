package entities

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// ConnectionErrorAnnotation replaces the annotation when the service cannot be reached.
	ConnectionErrorAnnotation = "Ollama connection error"
	// MissingAnswerAnnotation is used when the service response has no answer field.
	MissingAnswerAnnotation = "Could not get a comment."

	annotationSeparator  = "  "
	defaultCommentMarker = "#"

	promptTemplate = "You are an expert code commenter. Explain the following single line of code " +
		"in a concise, one-sentence comment. Do not output anything else, just the comment text.\n\n" +
		"The full code context is:\n```\n%s\n```\n\n" +
		"The line to comment on is: \"%s\""
)

//nolint:gochecknoglobals // static lookup table
var commentMarkers = map[string]string{
	".go": "//", ".c": "//", ".h": "//", ".cc": "//", ".cpp": "//", ".hpp": "//",
	".cs": "//", ".java": "//", ".kt": "//", ".kts": "//", ".scala": "//", ".swift": "//",
	".js": "//", ".jsx": "//", ".mjs": "//", ".cjs": "//", ".ts": "//", ".tsx": "//",
	".rs": "//", ".dart": "//", ".php": "//", ".groovy": "//", ".proto": "//", ".zig": "//",
	".sql": "--", ".lua": "--", ".hs": "--", ".elm": "--", ".ada": "--",
	".lisp": ";", ".clj": ";", ".cljs": ";", ".el": ";", ".scm": ";", ".asm": ";", ".ini": ";",
	".tex": "%", ".erl": "%",
}

// AnnotationRequest is built fresh for every non-blank line.
type AnnotationRequest struct {
	Line     string // trimmed candidate line
	FileText string // full original file text
	Endpoint string
	Model    string
}

// NewAnnotationRequest builds a request for line using the service settings.
func NewAnnotationRequest(line, fileText string, settings Settings) AnnotationRequest {
	return AnnotationRequest{
		Line:     line,
		FileText: fileText,
		Endpoint: settings.APIURL,
		Model:    settings.Model,
	}
}

// Prompt renders the instruction sent to the text-generation service.
func (r AnnotationRequest) Prompt() string {
	return fmt.Sprintf(promptTemplate, r.FileText, r.Line)
}

// GenerationRequest is the wire-independent shape of one service call.
type GenerationRequest struct {
	Endpoint string
	Model    string
	Prompt   string
	Stream   bool
}

// GenerationResult carries the service answer. Answered is false when the
// response had no answer field at all.
type GenerationResult struct {
	Response string
	Answered bool
}

// AnnotatedFile summarizes one successfully written output file.
type AnnotatedFile struct {
	SourcePath string
	DestPath   string
	Content    string
	Lines      int
	Annotated  int
}

// SanitizeAnnotation trims the answer, folds it onto a single line and
// removes every single and double quote so it can follow a line comment.
func SanitizeAnnotation(text string) string {
	text = strings.Join(strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || isLineBoundary(r)
	}), " ")
	text = strings.ReplaceAll(text, `"`, "")
	return strings.ReplaceAll(text, "'", "")
}

// CommentMarkerFor picks the line-comment marker for a file by extension,
// falling back to "#".
func CommentMarkerFor(path string) string {
	if marker, ok := commentMarkers[strings.ToLower(filepath.Ext(path))]; ok {
		return marker
	}
	return defaultCommentMarker
}

// AnnotateLine appends the annotation to the original, untrimmed line.
func AnnotateLine(line, marker, annotation string) string {
	return line + annotationSeparator + marker + " " + annotation
}

// IsBlank reports whether a line is empty or whitespace only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// SplitLines splits text at every line boundary: LF, CR, CRLF, VT, FF, the
// file/group/record separators (U+001C..U+001E), NEL, LINE SEPARATOR and
// PARAGRAPH SEPARATOR. A trailing boundary does not produce a final empty
// line, and empty text has no lines.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i, r := range text {
		if i < start || !isLineBoundary(r) {
			continue
		}
		lines = append(lines, text[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && strings.HasPrefix(text[start:], "\n") {
			start++
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// JoinLines reassembles lines with LF separators and no trailing newline.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
