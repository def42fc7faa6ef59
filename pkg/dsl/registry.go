package dsl

// Registry resolves UDF/subroutine names to their compiled definition
// sites for the Call{Expr,Stmt}Node handlers. Registration is by name
// before or after a body referencing that name is compiled — lookup
// happens at call time, not compile time, so forward references and
// recursion (a function calling itself) resolve without special-casing.
type Registry struct {
	udfs  map[string]*UDFDef
	subrs map[string]*SubrDef
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		udfs:  make(map[string]*UDFDef),
		subrs: make(map[string]*SubrDef),
	}
}

// RegisterUDF adds def to the registry under its own name.
func (r *Registry) RegisterUDF(def *UDFDef) {
	r.udfs[def.Name] = def
}

// RegisterSubr adds def to the registry under its own name.
func (r *Registry) RegisterSubr(def *SubrDef) {
	r.subrs[def.Name] = def
}

// LookupUDF returns the named UDF definition site, if any.
func (r *Registry) LookupUDF(name string) (*UDFDef, bool) {
	d, ok := r.udfs[name]
	return d, ok
}

// LookupSubr returns the named subroutine definition site, if any.
func (r *Registry) LookupSubr(name string) (*SubrDef, bool) {
	d, ok := r.subrs[name]
	return d, ok
}
