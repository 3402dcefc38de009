// Package err holds the base error shared by every grit package.
//
// Each package declares its own error types holding an *err.Error and adds
// the fields that matter for that domain:
//
//	type StoreError struct {
//	    base *err.Error
//	    Path string
//	}
//
//	func (e *StoreError) Error() string { return e.base.Error() }
//	func (e *StoreError) Unwrap() error { return e.base }
//
// The base is kept in a named field: embedding it would make the field name
// Error hide the promoted Error method.
//
// Kinds are identified by code. The codes that callers are expected to branch
// on are CodeEncoding, CodeDuplicatePath, CodeMissingIdentity, CodeIO and
// CodeRefCorruption. Test for a kind through the error chain with
//
//	err.IsCode(e, err.CodeIO)
//
// or recover the concrete type with errors.As.
package err
