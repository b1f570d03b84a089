// Package radarr implements an authenticated client for the Radarr v3 HTTP
// API with a fixed retry schedule.
//
// Every request carries the API key in the X-Api-Key header. Transport
// failures and 5xx responses are retried up to three attempts with 1s and 2s
// waits between them; 4xx responses fail immediately since retrying cannot
// change the outcome. Terminal failures are reported as *APIError carrying
// the HTTP status (0 when no response was received), a message, and the
// endpoint path.
package radarr
