package generator

import (
	"fmt"
	"time"
)

type Request struct {
	Prompt       string
	Language     string
	TemplateName string
	Reference    string
	Extra        map[string]string
}

type Result struct {
	SourceText string
	Language   string
	Meta       Metadata
}

type Metadata struct {
	RequestID     string
	Model         string
	TokenEstimate int
	Timestamp     time.Time
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
