// Package model defines domain data structures shared across the app:
// download requests, video descriptors, terminal outcomes, batch progress
// counters, history entries, and the quality/format option tables.
package model
