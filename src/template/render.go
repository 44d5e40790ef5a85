package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rendering is purely string to string. Names missing from the context
// render as empty strings rather than failing, since templates are
// user-authored and may reference optional fields. A typo in a
// placeholder name is therefore silently masked, not reported.

var (
	placeholderRe = regexp.MustCompile(`\{\{\s*(.+?)\s*\}\}`)
	tagRe         = regexp.MustCompile(`\{%\s*(.+?)\s*%\}`)
	forTagRe      = regexp.MustCompile(`^for\s+(\w+)\s+in\s+([\w.]+)$`)
	ifTagRe       = regexp.MustCompile(`^if\s+([\w.]+)$`)
	indentRe      = regexp.MustCompile(`^indent\(\s*(\d+)\s*\)$`)
)

func Render(tmpl *Template, ctx Context) (string, error) {
	out, err := renderText(tmpl.Body, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s/%s: %w", tmpl.Language, tmpl.Name, err)
	}
	return out, nil
}

// renderText expands block tags and substitutes placeholders in the plain
// text between them. Substituted values are never rescanned, so generated
// code containing marker-like text passes through untouched.
func renderText(s string, ctx Context) (string, error) {
	var b strings.Builder

	for len(s) > 0 {
		loc := tagRe.FindStringSubmatchIndex(s)
		if loc == nil {
			b.WriteString(substitute(s, ctx))
			break
		}

		b.WriteString(substitute(s[:loc[0]], ctx))
		tag := s[loc[2]:loc[3]]
		rest := s[loc[1]:]

		switch {
		case strings.HasPrefix(tag, "for"):
			m := forTagRe.FindStringSubmatch(tag)
			if m == nil {
				return "", fmt.Errorf("malformed for tag: {%% %s %%}", tag)
			}
			body, after, err := scanBlock(rest, "for", "endfor")
			if err != nil {
				return "", err
			}
			rendered, err := renderFor(body, m[1], m[2], ctx)
			if err != nil {
				return "", err
			}
			b.WriteString(rendered)
			s = after

		case strings.HasPrefix(tag, "if"):
			m := ifTagRe.FindStringSubmatch(tag)
			if m == nil {
				return "", fmt.Errorf("malformed if tag: {%% %s %%}", tag)
			}
			body, after, err := scanBlock(rest, "if", "endif")
			if err != nil {
				return "", err
			}
			thenPart, elsePart := splitElse(body)
			branch := elsePart
			if truthy(lookup(ctx, m[1])) {
				branch = thenPart
			}
			rendered, err := renderText(branch, ctx)
			if err != nil {
				return "", err
			}
			b.WriteString(rendered)
			s = after

		default:
			return "", fmt.Errorf("unexpected tag: {%% %s %%}", tag)
		}
	}

	return b.String(), nil
}

// scanBlock returns the text between the already-consumed opening tag and
// its matching closer, plus everything after the closer.
func scanBlock(s, open, close string) (body, after string, err error) {
	depth := 1
	offset := 0

	for {
		loc := tagRe.FindStringSubmatchIndex(s[offset:])
		if loc == nil {
			return "", "", fmt.Errorf("missing {%% %s %%}", close)
		}
		tag := s[offset+loc[2] : offset+loc[3]]

		switch {
		case strings.HasPrefix(tag, open+" ") || tag == open:
			depth++
		case tag == close:
			depth--
			if depth == 0 {
				return s[:offset+loc[0]], s[offset+loc[1]:], nil
			}
		}
		offset += loc[1]
	}
}

// splitElse cuts an if body at the else tag belonging to this level,
// ignoring else tags inside nested if blocks.
func splitElse(body string) (thenPart, elsePart string) {
	depth := 0
	offset := 0

	for {
		loc := tagRe.FindStringSubmatchIndex(body[offset:])
		if loc == nil {
			return body, ""
		}
		tag := body[offset+loc[2] : offset+loc[3]]

		switch {
		case strings.HasPrefix(tag, "if "):
			depth++
		case tag == "endif":
			depth--
		case tag == "else" && depth == 0:
			return body[:offset+loc[0]], body[offset+loc[1]:]
		}
		offset += loc[1]
	}
}

func renderFor(body, loopVar, listName string, ctx Context) (string, error) {
	var items []any

	switch v := lookup(ctx, listName).(type) {
	case nil:
		return "", nil
	case []Attribute:
		for _, item := range v {
			items = append(items, item)
		}
	case []string:
		for _, item := range v {
			items = append(items, item)
		}
	case []map[string]string:
		for _, item := range v {
			items = append(items, item)
		}
	case []any:
		items = v
	default:
		return "", nil
	}

	var b strings.Builder
	for _, item := range items {
		child := make(Context, len(ctx)+1)
		for k, v := range ctx {
			child[k] = v
		}
		child[loopVar] = item

		rendered, err := renderText(body, child)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}

func substitute(text string, ctx Context) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		expr := placeholderRe.FindStringSubmatch(match)[1]
		return evalExpr(expr, ctx)
	})
}

// evalExpr handles `name`, `name || default` and a trailing filter chain,
// e.g. `generated_code | indent(4)` or `class_name || "Gen" | indent(2)`.
func evalExpr(expr string, ctx Context) string {
	ref := expr
	fallback := ""
	hasFallback := false

	if i := strings.Index(expr, "||"); i >= 0 {
		ref = strings.TrimSpace(expr[:i])
		fallback = strings.TrimSpace(expr[i+2:])
		hasFallback = true
	}

	var filters []string
	if hasFallback {
		parts := strings.Split(fallback, "|")
		fallback = strings.TrimSpace(parts[0])
		filters = parts[1:]
	} else {
		parts := strings.Split(ref, "|")
		ref = strings.TrimSpace(parts[0])
		filters = parts[1:]
	}

	value := stringify(lookup(ctx, ref))
	if value == "" && hasFallback {
		value = resolveDefault(fallback, ctx)
	}

	for _, filter := range filters {
		value = applyFilter(strings.TrimSpace(filter), value)
	}
	return value
}

// resolveDefault unquotes literal defaults; a bare word is looked up in the
// context first and used verbatim when absent.
func resolveDefault(def string, ctx Context) string {
	if len(def) >= 2 {
		if (def[0] == '"' && def[len(def)-1] == '"') || (def[0] == '\'' && def[len(def)-1] == '\'') {
			return def[1 : len(def)-1]
		}
	}
	if v := stringify(lookup(ctx, def)); v != "" {
		return v
	}
	return def
}

func applyFilter(filter, value string) string {
	if m := indentRe.FindStringSubmatch(filter); m != nil {
		n, _ := strconv.Atoi(m[1])
		return indent(value, n)
	}
	// Unknown filters are ignored, same policy as unknown names.
	return value
}

// indent prefixes every line after the first with n spaces.
func indent(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= 1 {
		return s
	}
	prefix := strings.Repeat(" ", n)
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func lookup(ctx Context, ref string) any {
	base, field, hasField := strings.Cut(ref, ".")

	value, ok := ctx[base]
	if !ok {
		return nil
	}
	if !hasField {
		return value
	}

	switch v := value.(type) {
	case Attribute:
		switch field {
		case "name":
			return v.Name
		case "type":
			return v.Type
		case "default":
			return v.Default
		}
	case map[string]string:
		return v[field]
	case map[string]any:
		return v[field]
	}
	return nil
}

func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	default:
		return ""
	}
}

func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(value) != ""
	case bool:
		return value
	case []Attribute:
		return len(value) > 0
	case []string:
		return len(value) > 0
	case []map[string]string:
		return len(value) > 0
	case []any:
		return len(value) > 0
	default:
		return true
	}
}
