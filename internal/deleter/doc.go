// Package deleter composes the genre filter output, the keep list, and the
// Radarr client into batch deletions with per-item outcome accounting and
// dry-run support. Retries happen inside the API client; a failure here is
// terminal for that movie within the batch and the operator re-runs the
// command to retry. Re-deleting a movie Radarr no longer knows surfaces as
// its 404 and lands in the failed list.
package deleter
