package author

// Author is the persisted Author entity. The id is assigned by the
// database; version backs optimistic concurrency on updates.
type Author struct {
	ID        int64  `json:"autorId" db:"id"`
	Name      string `json:"name" db:"name"`
	Biography string `json:"biography" db:"biography"`
	Version   int    `json:"version" db:"version"`
}
