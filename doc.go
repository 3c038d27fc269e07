// Package cognauth is a client-side session controller for a Cognito-style
// identity provider. It drives the credential lifecycle (password login,
// registration, email verification, federated OAuth sign-in, logout)
// against the provider's hosted endpoints and keeps the resulting token
// triple in a pluggable store.
//
// # Architecture boundaries
//
// cognauth is the public surface. It exposes [Engine], [Builder], [Config],
// and value types (FlowResult, IdentityClaims, MetricsSnapshot). Wire-level
// provider calls live in the cognitoidp subpackage behind the [Transport]
// interface; token persistence lives in the tokens subpackage behind
// [tokens.Store].
//
// # What this package must NOT do
//
//   - Issue or verify tokens. The provider signs them and the resource
//     server verifies them; this package only carries them and reads
//     identity claims without verification.
//   - Retry, lock out, or rate limit on the caller's behalf. The provider
//     enforces its own limits and the engine translates them.
//   - Let a provider or transport error escape a flow boundary. Flow
//     operations return a [FlowResult] whose Message is always renderable.
//
// # Concurrency contract
//
// Engine methods are safe to call from multiple goroutines after
// initialization through [Builder.Build]. Flow operations perform at most
// one provider round-trip plus one store write per call.
package cognauth
