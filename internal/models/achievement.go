package models

// Achievement is a derived badge. Like every other aggregate it is
// recomputed from the log on read, never stored.
type Achievement struct {
	Code        string
	Title       string
	Description string
}
