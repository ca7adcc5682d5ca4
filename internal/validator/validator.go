// Package validator checks parsed Tally records for values that are present
// but implausible. It reports warnings only; the importer keeps every record.
package validator

import "ledgerly/internal/domain"

// Validator is the interface for a single built-in check.
type Validator interface {
	Validate(doc *domain.ParsedDocument) []domain.ImportWarning
	RuleKey() string
	RuleName() string
}

// Engine runs a fixed set of validators over a parsed document.
type Engine struct {
	validators []Validator
}

// NewEngine creates an engine running vs in order.
func NewEngine(vs ...Validator) *Engine {
	return &Engine{validators: vs}
}

// NewDefaultEngine creates an engine with every built-in validator.
func NewDefaultEngine() *Engine {
	return NewEngine(BuiltinValidators()...)
}

// Validate returns the warnings of every validator, grouped by validator in
// registration order. A nil document yields no warnings.
func (e *Engine) Validate(doc *domain.ParsedDocument) []domain.ImportWarning {
	warnings := []domain.ImportWarning{}
	if doc == nil {
		return warnings
	}
	for _, v := range e.validators {
		warnings = append(warnings, v.Validate(doc)...)
	}
	return warnings
}

// RuleKeys lists the rule keys of the registered validators.
func (e *Engine) RuleKeys() []string {
	keys := make([]string, len(e.validators))
	for i, v := range e.validators {
		keys[i] = v.RuleKey()
	}
	return keys
}
