package verify

import (
	"fmt"
	"strconv"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConsistencyVerifier = (*Verifier)(nil)

// Verifier compares the logical content of generated artifacts.
type Verifier struct{}

// New creates a new Verifier.
func New() *Verifier {
	return &Verifier{}
}

// Verify decodes the array and map forms and reports the first field or record that differs.
func (v *Verifier) Verify(array, mapped domain.Artifact) error {
	a, err := Decode(array)
	if err != nil {
		return err
	}
	m, err := Decode(mapped)
	if err != nil {
		return err
	}
	return compare(a, m, string(domain.FormArray), string(domain.FormMap))
}

// VerifyAgainst decodes one artifact and reports the first difference from the resolved metadata.
func (v *Verifier) VerifyAgainst(meta *domain.Metadata, artifact domain.Artifact) error {
	decoded, err := Decode(artifact)
	if err != nil {
		return err
	}
	return compare(meta, decoded, "resolved", string(artifact.Form))
}

// compare walks both models in emission order. left and right label the two
// sides in the returned error.
func compare(a, b *domain.Metadata, left, right string) error {
	identity := []struct {
		location string
		a, b     string
	}{
		{"ProjectName", a.Identity.Name, b.Identity.Name},
		{"ProjectVersion", a.Identity.Version, b.Identity.Version},
		{"ProjectDescription", a.Identity.Description, b.Identity.Description},
	}
	for _, f := range identity {
		if f.a != f.b {
			return mismatch(f.location, left, right, f.a, f.b)
		}
	}

	bSets := b.Sets()
	for i, set := range a.Sets() {
		other := bSets[i].Dependencies
		if len(set.Dependencies) != len(other) {
			return mismatch(set.Name+".length", left, right,
				strconv.Itoa(len(set.Dependencies)), strconv.Itoa(len(other)))
		}
		for j, dep := range set.Dependencies {
			if dep.Name != other[j].Name {
				return mismatch(fmt.Sprintf("%s[%d].name", set.Name, j), left, right, dep.Name, other[j].Name)
			}
			if dep.Version != other[j].Version {
				return mismatch(fmt.Sprintf("%s[%d].version", set.Name, j), left, right, dep.Version, other[j].Version)
			}
		}
	}
	return nil
}

func mismatch(location, left, right, a, b string) error {
	err := zerr.Wrap(domain.ErrRepresentationMismatch, "generated representations disagree at "+location)
	err = zerr.With(err, "location", location)
	err = zerr.With(err, left, a)
	return zerr.With(err, right, b)
}
