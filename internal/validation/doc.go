// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator with the custom tags the HTTP
// layer needs and translates failures into models.ValidationError, which the
// API maps to 400 VALIDATION_ERROR.
//
// # Custom Tags
//
//   - birthyear: exactly four ASCII digits
//   - gender: M or F, case-insensitive
//
// Field names in messages come from the `query` struct tag, so a failure on
//
//	BirthYear string `query:"birthYear" validate:"required,birthyear"`
//
// reads "birthYear must be a 4-digit year".
//
// # Usage
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondErr(w, r, verr.ToValidationError())
//	    return
//	}
//
// # Thread Safety
//
// GetValidator initializes the validator once; the instance caches struct
// metadata and is safe for concurrent use.
package validation
