// Package auth implements the bearer-token authentication core for the
// Observer backend: credential validation, identity resolution against the
// persisted user store, and the request-scoped Principal that request
// handlers consume.
//
// Resolution contract:
//   - Tokens are verified with HS256 and the shared signing secret. Any
//     other algorithm, including "none", is rejected before the claims are
//     inspected.
//   - A token must carry at least one of the two identity claims: user_id
//     (set by the password login flow) or sub (set by the external identity
//     flow, conventionally an email address).
//   - Lookup order is deterministic: user_id first, then sub. The email
//     lookup never runs once the id lookup matched a record.
//   - The reserved identity "test-user-123" bypasses the store and yields a
//     fabricated principal so dev tooling and smoke tests can authenticate
//     without seeding users. Expiry still applies; an expired token is
//     rejected before the reserved identity is considered.
//
// Store adapters compare emails case-sensitively; records are expected to
// be lowercased at write time. The admin predicate normalizes on its own
// and is the only place that does.
package auth
