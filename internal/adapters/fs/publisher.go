package fs

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ArtifactPublisher = (*Publisher)(nil)
	_ ports.ArtifactReader    = (*Publisher)(nil)
)

// Publisher writes artifacts through temporary files in their destination directories.
type Publisher struct{}

// NewPublisher creates a new Publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

type stagedFile struct {
	tmp  string
	dest string
}

// Publish stages every artifact next to its destination and renames them into place
// only once all of them were written. Artifacts whose file already holds the same
// content are left untouched.
func (p *Publisher) Publish(artifacts ...domain.Artifact) (err error) {
	seen := make(map[string]struct{}, len(artifacts))
	for _, a := range artifacts {
		dest := filepath.Clean(a.Path)
		if _, dup := seen[dest]; dup {
			return zerr.With(zerr.Wrap(domain.ErrOutputConflict, "artifacts share an output path"), "path", dest)
		}
		seen[dest] = struct{}{}
	}

	staged := make([]stagedFile, 0, len(artifacts))
	defer func() {
		if err != nil {
			for _, s := range staged {
				_ = os.Remove(s.tmp)
			}
		}
	}()

	for _, a := range artifacts {
		unchanged, err := sameContent(a.Path, a.Source)
		if err != nil {
			return err
		}
		if unchanged {
			continue
		}

		tmp, err := stage(a)
		if err != nil {
			return err
		}
		staged = append(staged, stagedFile{tmp: tmp, dest: a.Path})
	}

	for i, s := range staged {
		if err := os.Rename(s.tmp, s.dest); err != nil {
			// Files renamed so far are already in place; drop them from cleanup.
			staged = staged[i:]
			return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", s.dest)
		}
	}

	return nil
}

// Read loads a previously published artifact.
func (p *Publisher) Read(form domain.ArtifactForm, path string) (domain.Artifact, error) {
	//nolint:gosec // Path comes from the manifest's output configuration
	src, err := os.ReadFile(path)
	if err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
	}
	return domain.Artifact{Form: form, Path: path, Source: src}, nil
}

func stage(a domain.Artifact) (string, error) {
	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", dir)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(a.Path)+".*.tmp")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", a.Path)
	}
	tmp := f.Name()

	fail := func(err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", a.Path)
	}

	if _, err := f.Write(a.Source); err != nil {
		return fail(err)
	}
	if err := f.Sync(); err != nil {
		return fail(err)
	}
	if err := f.Chmod(domain.FilePerm); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", a.Path)
	}
	return tmp, nil
}

func sameContent(path string, src []byte) (bool, error) {
	//nolint:gosec // Path comes from the manifest's output configuration
	existing, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "path", path)
	}
	return bytes.Equal(existing, src), nil
}
