// Package scopes handles dotted permission scope strings such as
// "inventory.manage", and space-separated scope lists as carried in
// access-token claims.
//
// Three syntactic rules apply:
//
//   - Separator (" ") splits a scope list string.
//   - Delimiter (".") separates the namespace from the action.
//   - Wildcard ("*") matches everything on its own, or a whole namespace
//     when used as a suffix ("inventory.*").
//
// Usage:
//
//	granted := scopes.Parse("pos.access customer.view")
//	scopes.Join(granted) // "pos.access customer.view"
//
//	scopes.Matches("inventory.adjust", "inventory.*") // true
//	scopes.Matches("inventory", "inventory.*")        // false
package scopes
