// Package platform contains platform-aware string utilities: detecting the
// hosting platform from a URL, sanitizing titles into safe folder/file names,
// organizing output paths, and normalizing raw extractor errors into
// user-actionable messages.
package platform
