package domain

import "path/filepath"

const (
	// StampDirName is the name of the internal workspace directory.
	StampDirName = ".stamp"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// ManifestFileName is the name of the project manifest.
	ManifestFileName = "stamp.yaml"

	// GeneratorName identifies the tool in generated file headers.
	GeneratorName = "stamp"

	// DefaultArrayPackage is the package name of the array form artifact.
	DefaultArrayPackage = "versions"

	// DefaultMapPackage is the package name of the map form artifact.
	DefaultMapPackage = "versioninfo"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

var (
	// DefaultArrayPath is where the array form is written relative to the manifest.
	DefaultArrayPath = filepath.Join(DefaultArrayPackage, DefaultArrayPackage+"_gen.go")

	// DefaultMapPath is where the map form is written relative to the manifest.
	DefaultMapPath = filepath.Join(DefaultMapPackage, DefaultMapPackage+"_gen.go")
)

// DefaultStampPath returns the default root directory for stamp metadata.
func DefaultStampPath() string {
	return StampDirName
}

// DefaultStorePath returns the default path for the build info store.
// It joins .stamp and store.
func DefaultStorePath() string {
	return filepath.Join(StampDirName, StoreDirName)
}
