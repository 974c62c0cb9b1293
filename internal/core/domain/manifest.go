package domain

// ManifestSchemaVersion is the current manifest schema version. A manifest
// carrying any other version is treated as unparseable, which callers handle
// as a cache miss.
const ManifestSchemaVersion = 4

// Manifest is the persisted description of one complete cache generation: the
// scanned driver directories, the identity mode they were fingerprinted
// under, and the schema version.
type Manifest struct {
	Version      int               `json:"version"`
	IdentityMode IdentityMode      `json:"identity_mode"`
	Directories  []DriverDirectory `json:"paths"`
}

// NewManifest creates a manifest at the current schema version.
func NewManifest(mode IdentityMode, dirs []DriverDirectory) *Manifest {
	return &Manifest{
		Version:      ManifestSchemaVersion,
		IdentityMode: mode,
		Directories:  dirs,
	}
}

// Equal compares two manifests. The comparison is insensitive to the ordering
// of directories and of libraries within each role bucket; two scans of the
// same host state compare equal regardless of insertion order.
func (m *Manifest) Equal(o *Manifest) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Version != o.Version || m.IdentityMode != o.IdentityMode {
		return false
	}
	if len(m.Directories) != len(o.Directories) {
		return false
	}
	byPath := make(map[string]DriverDirectory, len(m.Directories))
	for _, dir := range m.Directories {
		byPath[dir.Path] = dir
	}
	for _, dir := range o.Directories {
		other, ok := byPath[dir.Path]
		if !ok || !other.Equal(dir) {
			return false
		}
	}
	return true
}
