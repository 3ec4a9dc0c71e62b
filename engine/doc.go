// Package engine resolves layered product recipes, tracks a buyer's
// customization of one drink and prices the result.
//
// Everything here is pure and synchronous: catalogs and recipe entries are
// passed in by the caller and nothing is read from shared state. A Session
// belongs to exactly one customization dialog and is not safe for concurrent
// use.
package engine
