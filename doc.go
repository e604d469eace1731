// Package main provides the entry point for the game settings management
// application. It runs a web server using the Fiber framework that lets
// clients maintain per-game setting schemas and named setting profiles
// through a REST API. The application uses gorm for data persistence and
// renders stored profiles against the live schema, tolerating entries whose
// definitions have since been removed.
package main
