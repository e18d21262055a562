// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/cinefilter/internal/models"
)

// Supported genders as stored on users.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Request is a cohort recommendation request as received from a client.
type Request struct {
	BirthYear string
	Gender    string
	Strategy  Strategy
}

// Cohort is the demographic bucket of a request: a gender and an inclusive
// birth-year range covering one age decade.
type Cohort struct {
	Decade       int
	Gender       string
	BirthYearMin int
	BirthYearMax int
}

// Label returns the display label of the cohort's age group, e.g. "20대".
func (c Cohort) Label() string {
	return fmt.Sprintf("%d대", c.Decade)
}

// ParseBirthYear validates a birth year given as exactly four digits.
func ParseBirthYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, models.NewValidationError("birthYear", "is required")
	}
	if len(raw) != 4 {
		return 0, models.NewValidationError("birthYear", "must be a 4-digit year")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, models.NewValidationError("birthYear", "must be a 4-digit year")
		}
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError("birthYear", "must be a 4-digit year")
	}
	return year, nil
}

// ParseGender normalizes a gender to GenderMale or GenderFemale.
func ParseGender(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case "":
		return "", models.NewValidationError("gender", "is required")
	default:
		return "", models.NewValidationError("gender", "must be M or F")
	}
}

// DeriveCohort buckets a birth year into an age decade relative to
// currentYear. The decade is clamped to [MinDecade, MaxDecade] and the
// birth-year range is derived from the clamped decade, so a five-year-old
// lands in the "10대" cohort with the range of actual teenagers.
func DeriveCohort(birthYear, currentYear int, gender string, cfg *Config) Cohort {
	age := currentYear - birthYear

	decade := cfg.MinDecade
	if age > 0 {
		decade = age / 10 * 10
	}
	if decade < cfg.MinDecade {
		decade = cfg.MinDecade
	}
	if decade > cfg.MaxDecade {
		decade = cfg.MaxDecade
	}

	return Cohort{
		Decade:       decade,
		Gender:       gender,
		BirthYearMin: currentYear - (decade + 9),
		BirthYearMax: currentYear - decade,
	}
}
