// Package newsletter turns newly published content into announcement emails
// for subscribed readers.
//
// The pipeline has three cooperating parts:
//
//   - Resolve merges the admin's email-settings overrides with the
//     process-wide fallback into a usable (or explicitly unusable) transport
//     descriptor, sender address and per-kind templates. Resolution never
//     fails; callers check Resolved.Usable before sending anything.
//   - Render produces one complete HTML document per recipient, from either
//     an admin-supplied body template or a built-in per-kind layout. Every
//     rendered message carries a personalized unsubscribe link; a custom
//     template cannot suppress it.
//   - Announcer ties it together for one content item: preflight the
//     configuration, fetch subscribed readers, then send sequentially,
//     tolerating per-recipient failures. One bad address never blocks the
//     rest of the list.
//
// Delivery is best-effort and single-attempt: failures are logged and
// reflected in the returned Result tally, not retried.
package newsletter
