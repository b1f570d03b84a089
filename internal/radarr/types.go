package radarr

// Movie is the wire representation of one library entry as returned by
// GET /api/v3/movie. Only the fields prunarr consumes are decoded.
type Movie struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Genres     []string `json:"genres"`
	HasFile    bool     `json:"hasFile"`
	SizeOnDisk int64    `json:"sizeOnDisk"`
}

// SystemStatus is the response of GET /api/v3/system/status.
type SystemStatus struct {
	AppName string `json:"appName"`
	Version string `json:"version"`
}

// Exclusion is one import exclusion record from GET /api/v3/exclusions.
type Exclusion struct {
	ID         int64  `json:"id"`
	TMDBID     int64  `json:"tmdbId"`
	MovieTitle string `json:"movieTitle"`
	MovieYear  int    `json:"movieYear"`
}
