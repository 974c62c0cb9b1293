package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestParse is returned when a stored manifest cannot be decoded.
	// Callers treat it as a cache miss, never as a fatal condition.
	ErrManifestParse = zerr.New("failed to parse cache manifest")

	// ErrManifestVersion is returned when a stored manifest carries an
	// unknown or missing schema version.
	ErrManifestVersion = zerr.New("unsupported cache manifest version")

	// ErrManifestWrite is returned when the manifest cannot be persisted.
	ErrManifestWrite = zerr.New("failed to write cache manifest")

	// ErrSearchPathRead is returned when the precomputed search path file
	// cannot be read from a published generation.
	ErrSearchPathRead = zerr.New("failed to read cached search path")

	// ErrSearchPathWrite is returned when the search path file cannot be
	// persisted.
	ErrSearchPathWrite = zerr.New("failed to write cached search path")

	// ErrScanFailed is returned when a candidate directory cannot be listed.
	ErrScanFailed = zerr.New("failed to scan driver directory")

	// ErrIdentityFailed is returned when a library fingerprint cannot be
	// computed.
	ErrIdentityFailed = zerr.New("failed to fingerprint library")

	// ErrInvalidIdentityMode is returned when the configured identity mode is
	// not one of the known strategies.
	ErrInvalidIdentityMode = zerr.New("invalid identity mode, expected 'content' or 'mtime-size'")

	// ErrCacheCopyFailed is returned when staging a library copy fails. The
	// rebuild aborts and the previous generation stays authoritative.
	ErrCacheCopyFailed = zerr.New("failed to copy library into cache")

	// ErrPatchFailed is returned when the external runpath patch step fails.
	ErrPatchFailed = zerr.New("failed to patch library runpath")

	// ErrPublishFailed is returned when the staged generation cannot be moved
	// into place.
	ErrPublishFailed = zerr.New("failed to publish cache generation")

	// ErrVendorConfigFailed is returned when an EGL vendor descriptor cannot
	// be written.
	ErrVendorConfigFailed = zerr.New("failed to write EGL vendor config")

	// ErrLockFailed is returned when the cache lock file cannot be created or
	// acquired. The cache is never touched without the lock.
	ErrLockFailed = zerr.New("failed to acquire cache lock")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoBinary is returned when run is invoked without a binary to wrap.
	ErrNoBinary = zerr.New("no binary specified")

	// ErrExecFailed is returned when the final process handoff fails.
	ErrExecFailed = zerr.New("failed to exec wrapped binary")
)
