// Package tokens persists the session token triple and profile hints for
// the credential flow engine. The [Store] interface has two backends: a
// mutex-guarded in-process [MemoryStore] and a Redis-backed [RedisStore]
// for sessions that must survive a restart. Stores also hold the single-use
// OAuth state nonce between authorize redirect and callback.
package tokens
