// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package services provides suture.Service wrappers for Cinefilter components.

HTTP Server (HTTPServerService):
  - Wraps *http.Server, translating ListenAndServe into Serve
  - Shuts down gracefully within a configurable timeout

Store Probe (StoreProbeService):
  - Pings the data store on an interval
  - Publishes the db_up gauge and logs availability transitions

Both implement fmt.Stringer so suture can name them in log messages.
*/
package services
