// Package catalog shapes a cat collection for display.
//
// The stages are pure functions applied in order:
//
//	Filter -> Sort -> Paginate
//
// Browser composes them with the page reset rules and a Selection so a view
// only has to forward user input and render the resulting Page.
package catalog
