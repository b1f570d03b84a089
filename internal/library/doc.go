// Package library fetches and filters the Radarr movie collection. The
// scanner normalizes wire records into Items; the genre filter is a pure
// selection over those Items with aggregate size statistics.
package library
