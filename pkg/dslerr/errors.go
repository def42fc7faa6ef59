// Package dslerr gives the DSL's static and verb runtime type errors (§7
// items 2 and 4 of the spec) a common shape for structured logging ahead of
// the fatal exit, rather than a bare fmt.Errorf. Runtime value errors stay
// as value.Value{Kind: KindError} — they are not promoted to DSLError.
package dslerr

import "fmt"

// Severity classifies how serious an error is, mirroring the graded
// taxonomy used elsewhere in this codebase's error reporting.
type Severity string

const (
	SeverityFatal Severity = "fatal" // static compile error; process must exit nonzero
	SeverityError Severity = "error" // recoverable at the call site
)

// Error codes for the categories this package actually raises.
const (
	CodeDuplicateParameter = "DSL_DUPLICATE_PARAMETER"
	CodeBareReturnInFunc   = "DSL_BARE_RETURN_IN_FUNC"
	CodeValueReturnInSubr  = "DSL_VALUE_RETURN_IN_SUBR"
	CodeUnassignedAnnot    = "DSL_UNASSIGNED_ANNOTATION"
	CodeNonNumericScan     = "VERB_NON_NUMERIC_SCAN"
)

// DSLError is a structured diagnostic naming the offending symbol and the
// component/operation that raised it.
type DSLError struct {
	Code      string
	Component string
	Operation string
	Symbol    string
	Severity  Severity
}

func (e *DSLError) Error() string {
	return fmt.Sprintf("[%s:%s] %s: %q", e.Component, e.Operation, e.Code, e.Symbol)
}

// New builds a DSLError.
func New(code, component, operation, symbol string, severity Severity) *DSLError {
	return &DSLError{Code: code, Component: component, Operation: operation, Symbol: symbol, Severity: severity}
}

// DuplicateParameter reports a duplicate parameter name found while
// compiling a def/subr node (§4.7 step 3, §4.9).
func DuplicateParameter(funcName, paramName string) *DSLError {
	return New(CodeDuplicateParameter, "dsl", "alloc_udf", fmt.Sprintf("%s(...%s...)", funcName, paramName), SeverityFatal)
}

// BareReturnInFunc reports a value-less return inside a UDF body.
func BareReturnInFunc(funcName string) *DSLError {
	return New(CodeBareReturnInFunc, "dsl", "alloc_udf", funcName, SeverityFatal)
}

// ValueReturnInSubr reports a value-returning return inside a subroutine
// body.
func ValueReturnInSubr(subrName string) *DSLError {
	return New(CodeValueReturnInSubr, "dsl", "alloc_subroutine", subrName, SeverityFatal)
}

// UnassignedAnnotation reports an internal-coding-error: a def/subr AST node
// reached compilation without MaxVarDepth/FrameVarCount assigned.
func UnassignedAnnotation(funcName string) *DSLError {
	return New(CodeUnassignedAnnot, "dsl", "alloc_udf", funcName, SeverityFatal)
}

// NonNumericScan reports sec2gmt's scan_number_or_die contract failure.
func NonNumericScan(fieldName, value string) *DSLError {
	return New(CodeNonNumericScan, "verb", "sec2gmt", fmt.Sprintf("%s=%q", fieldName, value), SeverityFatal)
}
