package emit

import (
	"go/token"
	"strconv"
	"unicode/utf8"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

// literal renders value as a Go interpreted string literal.
// Both forms quote through this function so a value is escaped identically in each,
// or rejected in each.
func literal(form domain.ArtifactForm, field, value string) (string, error) {
	if !utf8.ValidString(value) {
		err := zerr.Wrap(domain.ErrEmissionFailure, "value is not valid UTF-8")
		err = zerr.With(err, "form", string(form))
		err = zerr.With(err, "field", field)
		return "", zerr.With(err, "value", strconv.QuoteToASCII(value))
	}
	return strconv.Quote(value), nil
}

// checkPackage rejects package names the Go compiler would not accept.
func checkPackage(form domain.ArtifactForm, name string) error {
	if !token.IsIdentifier(name) || name == "_" {
		err := zerr.Wrap(domain.ErrEmissionFailure, "package name is not a valid identifier")
		err = zerr.With(err, "form", string(form))
		return zerr.With(err, "package", name)
	}
	return nil
}
