// Package processor implements the sidecar data plane of a function
// invocation pipeline. It pulls records from one or more partitioned input
// topics, merges them into a single tagged stream, slices that stream into
// time-bounded invocation windows, drives one multiplexed RPC session
// against the function per window, and routes the function's tagged output
// frames back onto their destination topics.
//
// Delivery guarantee: a record is acknowledged to its gateway immediately
// upon receipt, before it travels through invocation and publication. A
// crash between the ack and the publication of that record's results loses
// the record's effect. This at-most-once contract is deliberate and part of
// the component's interface; see DESIGN.md for the operator-facing
// discussion.
//
// Sessions are consumed strictly one at a time: all publications of one
// window complete before the next window's invocation begins. Input
// subscriptions and their acknowledgements run concurrently without limit.
package processor
