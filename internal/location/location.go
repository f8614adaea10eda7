// Package location resolves the city and country the overlay reports on.
//
// Candidate values come from several sources (command line, environment,
// configuration file) passed in precedence order. City and country are
// resolved independently: each field takes the first non-empty value found.
// Country codes are upper-cased (ASCII letters only) when accepted. If either field stays
// unresolved, Resolve fails with ErrLocationMissing and the caller is
// expected to stop before any weather fetch is issued.
package location

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Location is the resolved weather query key.
type Location struct {
	City    string `validate:"required"`
	Country string `validate:"required"`
}

// String renders "City, CC".
func (l Location) String() string {
	return l.City + ", " + l.Country
}

// Source is one candidate for the location. Nil or blank fields are absent.
type Source struct {
	Name    string
	City    *string
	Country *string
}

// ErrLocationMissing reports that city or country could not be resolved.
var ErrLocationMissing = errors.New("location is not configured")

// MissingError lists the fields no source provided.
type MissingError struct {
	Fields []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrLocationMissing, strings.Join(e.Fields, " and "))
}

// Is lets errors.Is match ErrLocationMissing.
func (e *MissingError) Is(target error) bool {
	return target == ErrLocationMissing
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Resolve merges the sources, earliest first, into a Location.
func Resolve(sources ...Source) (Location, error) {
	var loc Location
	for _, src := range sources {
		if loc.City == "" {
			loc.City = accept(src.City)
		}
		if loc.Country == "" {
			loc.Country = asciiUpper(accept(src.Country))
		}
	}

	if err := validate.Struct(loc); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Location{}, fmt.Errorf("validate location: %w", err)
		}
		missing := &MissingError{}
		for _, fe := range verrs {
			missing.Fields = append(missing.Fields, strings.ToLower(fe.Field()))
		}
		return Location{}, missing
	}
	return loc, nil
}

// Value returns a pointer to s, or nil when s is blank. Handy for building
// Sources from plain strings.
func Value(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func accept(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// asciiUpper upper-cases a-z and leaves every other rune alone, so the
// value keeps its length and shape.
func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
