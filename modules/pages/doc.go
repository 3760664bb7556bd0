// Package pages is the admin console's page-settings module: a Postgres
// store of opaque JSON content keyed by page slug, HTTP handlers for the
// admin's read/save forms, and the save-and-announce coordinator that feeds
// the newsletter pipeline.
//
// The coordinator's contract is deliberately one-sided: the admin's save
// succeeds or fails solely on the persistence write. Announcement work runs
// detached from the request after the write, and every announcement failure
// is a log-level concern only.
package pages
