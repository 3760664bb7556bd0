// Package slug derives URL-safe identifiers from free-form text.
//
// The derivation rule is deliberately simple and stable, because slugs double
// as identity keys for content items: lowercase the input and collapse every
// run of non-alphanumeric characters into a single hyphen. Changing this rule
// would change the identity of already-published items, so treat it as frozen.
//
// Usage:
//
//	slug.Make("Hello, World!") // "hello-world"
//	slug.Make("  Price: $99 ") // "price-99"
package slug
