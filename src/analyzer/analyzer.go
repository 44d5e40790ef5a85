package analyzer

import (
	"regexp"
	"strings"
)

type LineCounts struct {
	Total   int
	Blank   int
	Comment int
	Code    int
}

func CountLines(src string) LineCounts {
	var counts LineCounts

	for _, line := range strings.Split(src, "\n") {
		counts.Total++
		stripped := strings.TrimSpace(line)
		switch {
		case stripped == "":
			counts.Blank++
		case strings.HasPrefix(stripped, "#") || strings.HasPrefix(stripped, "//"):
			counts.Comment++
		default:
			counts.Code++
		}
	}
	return counts
}

type Function struct {
	Name      string
	Line      int
	Signature string
}

var functionPatterns = map[string]*regexp.Regexp{
	"python":     regexp.MustCompile(`^\s*(?:async\s+)?def\s+(\w+)\s*\(`),
	"javascript": regexp.MustCompile(`function\s+(\w+)\s*\([^)]*\)`),
	"typescript": regexp.MustCompile(`function\s+(\w+)\s*\([^)]*\)`),
	"go":         regexp.MustCompile(`^func\s+(?:\([^)]*\)\s+)?(\w+)\s*\(`),
	"java":       regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?\w+(?:<[^>]*>)?\s+(\w+)\s*\([^)]*\)`),
	"csharp":     regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?\w+(?:<[^>]*>)?\s+(\w+)\s*\([^)]*\)`),
	"cpp":        regexp.MustCompile(`^(?:[\w:<>*&]+\s+)+(\w+)\s*\([^)]*\)\s*\{`),
}

func SupportsLanguage(language string) bool {
	_, ok := functionPatterns[strings.ToLower(language)]
	return ok
}

func ExtractFunctions(src, language string) []Function {
	pattern, ok := functionPatterns[strings.ToLower(language)]
	if !ok {
		return nil
	}

	var functions []Function
	for i, line := range strings.Split(src, "\n") {
		match := pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		functions = append(functions, Function{
			Name:      match[1],
			Line:      i + 1,
			Signature: strings.TrimSpace(line),
		})
	}
	return functions
}

// LanguageFromExtension maps a file extension (with leading dot) to the
// language name used by the rest of the tool.
func LanguageFromExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".py":
		return "python"
	case ".js":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".go":
		return "go"
	case ".java":
		return "java"
	case ".cs":
		return "csharp"
	case ".cpp", ".cc", ".cxx", ".hpp":
		return "cpp"
	case ".rs":
		return "rust"
	default:
		return "unknown"
	}
}
