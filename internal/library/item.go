package library

// Item is prunarr's internal view of one library movie, produced fresh on
// each scan. IDs are assigned by Radarr and stable within a session.
type Item struct {
	ID         int64
	Title      string
	Year       int
	Genres     []string
	HasFile    bool
	SizeOnDisk int64
}
