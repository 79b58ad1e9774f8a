// Package errors provides classified error handling for the streaming
// processor.
//
// Errors are classified as transient, invalid, or fatal. The pipeline driver
// uses the classification to decide between aborting a single invocation
// session (invalid live data) and terminating the whole process (fatal
// configuration or RPC failure).
//
// Use the Wrap helpers to attach component/operation context:
//
//	if err := pool.Get(endpoint); err != nil {
//	    return errors.WrapInvalid(err, "router", "Route", "endpoint lookup")
//	}
package errors
