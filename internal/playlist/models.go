package playlist

import (
	"time"
)

// Playlist is a named, described, owner-scoped collection of video
// references. VideoIDs is insertion-ordered and may contain duplicates;
// membership only changes through the append/remove-all mutations.
type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoIDs    []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Video is the slice of the external catalog entity this service reads.
// Only existence is ever checked; nothing here is mutated.
type Video struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlaylistPatch carries a partial metadata update. Nil fields are left
// untouched by the store.
type PlaylistPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
