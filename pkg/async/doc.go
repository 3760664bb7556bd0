// Package async provides a small Future abstraction for running work off the
// request path while keeping a handle to its eventual result.
//
// The primary consumer is fire-and-log background work: launch a function
// with Async, let the request finish, and Await the future only where a
// caller (typically a test) actually needs the outcome.
//
//	f := async.Async(ctx, payload, func(ctx context.Context, p Payload) (int, error) {
//	    return process(ctx, p)
//	})
//	// ... later, optionally:
//	n, err := f.Await()
package async
