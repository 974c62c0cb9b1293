// Package domain contains the core value types describing host driver
// libraries and the cache manifest built from them.
package domain

// Category classifies a shared object by the role it plays in the driver
// stack. Values combine as a bit set since one file can serve several roles.
type Category uint8

const (
	// CategoryGeneric marks the base driver DSOs plus their host-side
	// dependencies. A directory without at least one generic match is not a
	// driver directory.
	CategoryGeneric Category = 1 << iota
	// CategoryCUDA marks the CUDA entry points.
	CategoryCUDA
	// CategoryGLX marks the GLX vendor dispatch library.
	CategoryGLX
	// CategoryEGL marks the EGL vendor dispatch and platform libraries.
	CategoryEGL
)

// Has reports whether c contains all categories in want.
func (c Category) Has(want Category) bool {
	return c&want == want
}

// Identity captures the fingerprint used to decide whether a cached copy of a
// library still matches its host source. Under IdentityModeContent only SHA256
// is set; under IdentityModeMTime only LastModified and Size are set. The two
// modes are never mixed within one manifest.
type Identity struct {
	LastModified int64  `json:"last_modification,omitempty"`
	Size         int64  `json:"size,omitempty"`
	SHA256       string `json:"sha256,omitempty"`
}

// IdentityMode selects the fingerprint strategy for a scan.
type IdentityMode string

const (
	// IdentityModeContent fingerprints files by their SHA256 content hash.
	// Rewrite-proof, costs one full read per file per scan.
	IdentityModeContent IdentityMode = "content"
	// IdentityModeMTime fingerprints files by (mtime, size). O(1) per file but
	// blind to sub-second rewrites and clock skew.
	IdentityModeMTime IdentityMode = "mtime-size"
)

// Valid reports whether m is a known identity mode.
func (m IdentityMode) Valid() bool {
	return m == IdentityModeContent || m == IdentityModeMTime
}

// ResolvedLibrary is one host shared object found during a scan. Values are
// immutable once created; the host file itself is never mutated.
type ResolvedLibrary struct {
	Name      string   `json:"name"`
	OriginDir string   `json:"dirpath"`
	FullPath  string   `json:"fullpath"`
	Identity  Identity `json:"identity"`
}

// DriverDirectory is one candidate host directory together with the
// classified libraries found in it. The role buckets are disjoint by role but
// may overlap by file.
type DriverDirectory struct {
	Path    string            `json:"path"`
	Generic []ResolvedLibrary `json:"generic"`
	CUDA    []ResolvedLibrary `json:"cuda"`
	GLX     []ResolvedLibrary `json:"glx"`
	EGL     []ResolvedLibrary `json:"egl"`
}

// Equal compares two driver directories using set semantics on every role
// bucket, so the comparison is insensitive to scan order.
func (d DriverDirectory) Equal(o DriverDirectory) bool {
	return d.Path == o.Path &&
		equalLibrarySet(d.Generic, o.Generic) &&
		equalLibrarySet(d.CUDA, o.CUDA) &&
		equalLibrarySet(d.GLX, o.GLX) &&
		equalLibrarySet(d.EGL, o.EGL)
}

// equalLibrarySet compares two library slices as multisets.
func equalLibrarySet(a, b []ResolvedLibrary) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[ResolvedLibrary]int, len(a))
	for _, lib := range a {
		counts[lib]++
	}
	for _, lib := range b {
		counts[lib]--
		if counts[lib] < 0 {
			return false
		}
	}
	return true
}
