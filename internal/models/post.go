package models

import "time"

// Post is an authoritative post record. User is the author's public
// snapshot captured at creation time, not a live reference; later profile
// edits do not propagate into existing posts.
type Post struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	User     PublicUser `json:"user"`
	Date     time.Time  `json:"date"`
	Comments []Comment  `json:"comments"`
	Likes    []int64    `json:"likes"`
}

// LikedBy reports whether the given user id is in the post's likes set.
func (p *Post) LikedBy(userID int64) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// PostDraft is the new-post input.
type PostDraft struct {
	Title   string
	Message string
}

// Comment is attached to a post in chronological (append) order.
// PostID is a back-reference by id only.
type Comment struct {
	Message  string    `json:"message"`
	Date     time.Time `json:"date"`
	PostID   int64     `json:"postId"`
	UserName string    `json:"userName"`
}
