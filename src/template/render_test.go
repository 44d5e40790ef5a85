package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, body string, ctx Context) string {
	t.Helper()
	out, err := Render(&Template{Language: "python", Name: "test", Body: body}, ctx)
	require.NoError(t, err)
	return out
}

func TestRenderPlaceholders(t *testing.T) {
	testCases := []struct {
		name string
		body string
		ctx  Context
		want string
	}{
		{
			name: "direct substitution",
			body: "hello {{ name }}!",
			ctx:  Context{"name": "world"},
			want: "hello world!",
		},
		{
			name: "unknown name renders empty",
			body: "before{{ missing }}after",
			ctx:  Context{},
			want: "beforeafter",
		},
		{
			name: "fallback used when name absent",
			body: `{{ class_name || "Gen" }}`,
			ctx:  Context{},
			want: "Gen",
		},
		{
			name: "fallback used when name empty",
			body: `{{ class_name || "Gen" }}`,
			ctx:  Context{"class_name": ""},
			want: "Gen",
		},
		{
			name: "fallback ignored when name present",
			body: `{{ class_name || "Gen" }}`,
			ctx:  Context{"class_name": "X"},
			want: "X",
		},
		{
			name: "bare word fallback",
			body: "{{ language || python }}",
			ctx:  Context{},
			want: "python",
		},
		{
			name: "single quoted fallback",
			body: "{{ x || 'fallback' }}",
			ctx:  Context{},
			want: "fallback",
		},
		{
			name: "numeric value",
			body: "{{ count }} items",
			ctx:  Context{"count": 3},
			want: "3 items",
		},
		{
			name: "unknown filter is ignored",
			body: "{{ name | upper }}",
			ctx:  Context{"name": "abc"},
			want: "abc",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, tc.body, tc.ctx))
		})
	}
}

func TestRenderIndent(t *testing.T) {
	t.Run("first line unchanged, rest prefixed", func(t *testing.T) {
		out := render(t, "{{ code | indent(4) }}", Context{"code": "a\nb\nc"})
		assert.Equal(t, "a\n    b\n    c", out)
	})

	t.Run("single line untouched", func(t *testing.T) {
		out := render(t, "{{ code | indent(4) }}", Context{"code": "pass"})
		assert.Equal(t, "pass", out)
	})

	t.Run("combined with fallback", func(t *testing.T) {
		out := render(t, `{{ code || "x\ny" | indent(2) }}`, Context{"code": "a\nb"})
		assert.Equal(t, "a\n  b", out)
	})
}

func TestRenderClassScenario(t *testing.T) {
	body := "class {{ class_name || \"Gen\" }}:\n    {{ generated_code | indent(4) }}"
	out := render(t, body, Context{"generated_code": "pass"})
	assert.Equal(t, "class Gen:\n    pass", out)
}

func TestRenderForLoop(t *testing.T) {
	t.Run("attribute records", func(t *testing.T) {
		body := "{% for attr in attributes %}self.{{ attr.name }} = {{ attr.default || \"None\" }}\n{% endfor %}"
		out := render(t, body, Context{
			"attributes": []Attribute{
				{Name: "count", Default: "0"},
				{Name: "items"},
			},
		})
		assert.Equal(t, "self.count = 0\nself.items = None\n", out)
	})

	t.Run("string list", func(t *testing.T) {
		body := "{% for item in names %}[{{ item }}]{% endfor %}"
		out := render(t, body, Context{"names": []string{"a", "b"}})
		assert.Equal(t, "[a][b]", out)
	})

	t.Run("missing list renders nothing", func(t *testing.T) {
		body := "x{% for item in names %}[{{ item }}]{% endfor %}y"
		assert.Equal(t, "xy", render(t, body, Context{}))
	})

	t.Run("unclosed loop fails", func(t *testing.T) {
		_, err := Render(&Template{Body: "{% for item in names %}oops"}, Context{})
		assert.Error(t, err)
	})
}

func TestRenderIf(t *testing.T) {
	body := "{% if flag %}yes{% else %}no{% endif %}"

	testCases := []struct {
		name string
		ctx  Context
		want string
	}{
		{name: "true string", ctx: Context{"flag": "x"}, want: "yes"},
		{name: "empty string", ctx: Context{"flag": ""}, want: "no"},
		{name: "absent", ctx: Context{}, want: "no"},
		{name: "bool true", ctx: Context{"flag": true}, want: "yes"},
		{name: "bool false", ctx: Context{"flag": false}, want: "no"},
		{name: "non-empty list", ctx: Context{"flag": []string{"a"}}, want: "yes"},
		{name: "empty list", ctx: Context{"flag": []string{}}, want: "no"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, body, tc.ctx))
		})
	}
}

func TestRenderIfWithoutElse(t *testing.T) {
	body := "a{% if flag %}b{% endif %}c"
	assert.Equal(t, "abc", render(t, body, Context{"flag": "x"}))
	assert.Equal(t, "ac", render(t, body, Context{}))
}

func TestRenderNestedBlocks(t *testing.T) {
	body := "{% for attr in attributes %}{% if attr.type %}{{ attr.name }}: {{ attr.type }}\n{% else %}{{ attr.name }}\n{% endif %}{% endfor %}"
	out := render(t, body, Context{
		"attributes": []Attribute{
			{Name: "a", Type: "int"},
			{Name: "b"},
		},
	})
	assert.Equal(t, "a: int\nb\n", out)
}

func TestRenderDoesNotRescanValues(t *testing.T) {
	// Marker-like text inside substituted values must pass through untouched.
	out := render(t, "{{ generated_code }}", Context{
		"generated_code":    "print('{{ not_a_placeholder }}')",
		"not_a_placeholder": "boom",
	})
	assert.Equal(t, "print('{{ not_a_placeholder }}')", out)
}
