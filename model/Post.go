package model

// Post struct defines how a post must be
type Post struct {
	LegacyID  string    `json:"_id,omitempty"`
	ID        string    `json:"id,omitempty"`
	User      *User     `json:"user,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Image     string    `json:"image,omitempty"`
	Caption   string    `json:"caption,omitempty"`
	Likes     Count     `json:"likes,omitempty"`
	Comments  []Comment `json:"comments,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
	Location  string    `json:"location,omitempty"`
}

// Comment struct defines how a comment on a post must be
type Comment struct {
	LegacyID  string `json:"_id,omitempty"`
	ID        string `json:"id,omitempty"`
	User      *User  `json:"user,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Key returns the canonical identifier of the post
func (p *Post) Key() string {
	if p.LegacyID != "" {
		return p.LegacyID
	}
	return p.ID
}

// Is reports whether id designates this post, matching
// either identifier field
func (p *Post) Is(id string) bool {
	return id != "" && (p.LegacyID == id || p.ID == id)
}

// Picture returns the image of the post, whichever field
// the backend filled
func (p *Post) Picture() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return p.Image
}
