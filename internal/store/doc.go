// Package store defines the persistence interfaces the handlers depend on,
// along with the sentinel errors all implementations share. Concrete
// implementations live in internal/platform/mongodb.
package store
