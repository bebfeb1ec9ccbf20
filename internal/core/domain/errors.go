package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingMetadata is returned when a required manifest field is absent or empty.
	ErrMissingMetadata = zerr.New("missing metadata")

	// ErrEmissionFailure is returned when metadata cannot be represented as Go source.
	ErrEmissionFailure = zerr.New("emission failure")

	// ErrRepresentationMismatch is returned when the two emitted forms do not encode the same data.
	ErrRepresentationMismatch = zerr.New("representation mismatch")

	// ErrInvalidPassTransition is returned when a generation pass skips or repeats a state.
	ErrInvalidPassTransition = zerr.New("invalid generation pass transition")

	// ErrGenerationFailed is returned when a generation pass ends in the failed state.
	ErrGenerationFailed = zerr.New("generation failed")

	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = zerr.New("could not find manifest")

	// ErrManifestReadFailed is returned when the manifest or lockfile cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest or lockfile cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrTargetNotFound is returned when a requested target is not declared in the manifest.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrTargetRequired is returned when the manifest declares several targets and none was selected.
	ErrTargetRequired = zerr.New("manifest declares several targets, select one with --target or use --all")

	// ErrOutputConflict is returned when two artifacts would be written to the same path.
	ErrOutputConflict = zerr.New("conflicting output paths")

	// ErrPublishFailed is returned when generated artifacts cannot be written.
	ErrPublishFailed = zerr.New("failed to publish artifacts")

	// ErrArtifactReadFailed is returned when a published artifact cannot be read back.
	ErrArtifactReadFailed = zerr.New("failed to read artifact")

	// ErrArtifactStale is returned when a published artifact differs from what the manifest generates.
	ErrArtifactStale = zerr.New("artifact is out of date, run stamp generate")

	// ErrInputHashComputationFailed is returned when input hash computation fails.
	ErrInputHashComputationFailed = zerr.New("failed to compute input hash")

	// ErrOutputHashComputationFailed is returned when output hash computation fails.
	ErrOutputHashComputationFailed = zerr.New("failed to compute output hash")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch manifest")
)
