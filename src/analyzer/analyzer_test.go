package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLines(t *testing.T) {
	src := "# header\n\nx = 1\n// trailing comment\n\ny = 2"

	counts := CountLines(src)

	assert.Equal(t, 6, counts.Total)
	assert.Equal(t, 2, counts.Blank)
	assert.Equal(t, 2, counts.Comment)
	assert.Equal(t, 2, counts.Code)
}

func TestExtractFunctions(t *testing.T) {
	testCases := []struct {
		name     string
		language string
		src      string
		want     []string
	}{
		{
			name:     "python",
			language: "python",
			src:      "import os\n\ndef first(a, b):\n    pass\n\nasync def second():\n    pass\n",
			want:     []string{"first", "second"},
		},
		{
			name:     "go",
			language: "go",
			src:      "package x\n\nfunc Alpha() {}\n\nfunc (s *S) Beta(n int) error {\n\treturn nil\n}\n",
			want:     []string{"Alpha", "Beta"},
		},
		{
			name:     "javascript",
			language: "javascript",
			src:      "function add(a, b) { return a + b; }\nconst x = 1;\n",
			want:     []string{"add"},
		},
		{
			name:     "unsupported language",
			language: "rust",
			src:      "fn main() {}\n",
			want:     nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			functions := ExtractFunctions(tc.src, tc.language)

			var names []string
			for _, fn := range functions {
				names = append(names, fn.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestExtractFunctionsReportsLines(t *testing.T) {
	functions := ExtractFunctions("x = 1\ndef f():\n    pass\n", "python")

	assert.Len(t, functions, 1)
	assert.Equal(t, "f", functions[0].Name)
	assert.Equal(t, 2, functions[0].Line)
	assert.Equal(t, "def f():", functions[0].Signature)
}

func TestLanguageFromExtension(t *testing.T) {
	assert.Equal(t, "python", LanguageFromExtension(".py"))
	assert.Equal(t, "javascript", LanguageFromExtension(".js"))
	assert.Equal(t, "go", LanguageFromExtension(".go"))
	assert.Equal(t, "cpp", LanguageFromExtension(".CC"))
	assert.Equal(t, "unknown", LanguageFromExtension(".zig"))
}
