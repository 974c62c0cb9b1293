package ports

// Locker provides cross-process mutual exclusion for a cache root.
//
//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	// Acquire blocks until the exclusive lock at path is held, then returns a
	// lease. The lease must be released on every exit path; the lock is also
	// freed by the kernel if the holding process dies.
	Acquire(path string) (Lease, error)
}

// Lease is a held lock. Release is idempotent.
type Lease interface {
	Release()
}
