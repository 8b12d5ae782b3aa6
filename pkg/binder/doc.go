// Package binder maps submitted HTML form fields onto tagged Go structs.
//
// It deliberately supports only string-valued fields: form input arrives as
// untyped strings and any coercion belongs to the validation layer, not the
// transport binding.
package binder
