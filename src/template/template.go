package template

type Template struct {
	Language string
	Name     string
	Body     string
}

type Attribute struct {
	Name    string
	Type    string
	Default string
}

type Context map[string]any
