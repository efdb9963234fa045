// Package codes produces one-time numeric codes and keeps the outstanding
// ones until they are consumed or expire.
//
// Two stores share the Store contract: pending registrations keyed by the
// emailed code, and password recovery codes bound to a user id. MemoryStore
// is process-local and swept on a ticker; RedisStore relies on key TTLs.
// Either way expiry is also checked lazily by the caller against IssuedAt.
package codes
