package domain

import "time"

// ContentKind identifies one of the admin-managed feeds.
type ContentKind string

const (
	KindPost       ContentKind = "post"
	KindInternship ContentKind = "internship"
	KindNews       ContentKind = "news"
)

// ContentKinds lists every kind in dashboard order.
var ContentKinds = []ContentKind{KindPost, KindInternship, KindNews}

// Valid reports whether k is a known content kind.
func (k ContentKind) Valid() bool {
	switch k {
	case KindPost, KindInternship, KindNews:
		return true
	}
	return false
}

// Content is a single feed entry. Fields that only apply to one kind are
// left empty for the others: Author for posts, Company/Location/Skills/
// Deadline/Link for internships. Category carries the post type, the news
// category or the internship type. For news, CreatedAt is the publication time.
type Content struct {
	ID          string      `json:"id" bson:"_id"`
	Kind        ContentKind `json:"kind" bson:"kind"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Author      string      `json:"author,omitempty" bson:"author,omitempty"`
	Company     string      `json:"company,omitempty" bson:"company,omitempty"`
	Location    string      `json:"location,omitempty" bson:"location,omitempty"`
	Skills      []string    `json:"skills,omitempty" bson:"skills,omitempty"`
	Category    string      `json:"category,omitempty" bson:"category,omitempty"`
	Deadline    *time.Time  `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Link        string      `json:"link,omitempty" bson:"link,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
