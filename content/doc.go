// Package content models the site's page content and detects newly published
// items across a save.
//
// Page content is stored as opaque JSON; this package imposes shape
// expectations only at the boundary where it reads the page's collection
// ("posts" for the blog, "items" for everything else). Parsing is permissive
// by contract: missing or wrong-typed fields default to zero values and never
// raise an error, because a malformed admin payload must not break a save.
//
// Every item has a canonical slug, the identity key used to tell a brand-new
// item from an edit of an existing one:
//
//   - the explicit "slug" field, trimmed and lowercased, when present;
//   - otherwise the title run through slug.Make;
//   - otherwise the empty string, which marks the item as non-identifiable.
//
// NewItems compares a page's collection before and after a save and reports
// the items whose canonical slug did not exist before. Items with an empty
// canonical slug are never reported, so malformed items cannot trigger
// announcements or collide with each other.
package content
