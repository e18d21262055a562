// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package logging provides centralized zerolog-based structured logging for Cinefilter.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from config.LoggingConfig
//   - JSON output for production and console output for development
//   - Request and correlation IDs carried through context.Context
//   - An slog adapter so the suture supervisor logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("driver", "duckdb").Msg("Store opened")
//	logging.Ctx(ctx).Error().Err(err).Msg("Filter search failed")
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
