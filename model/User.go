package model

// DefaultAvatar is the avatar service used when a profile
// has no picture set
const DefaultAvatar = "https://i.pravatar.cc/150"

// User struct defines how an account must be.
// The backend fills either _id or id depending on the endpoint,
// and counters arrive either as numbers or as collections.
type User struct {
	LegacyID       string   `json:"_id,omitempty"`
	ID             string   `json:"id,omitempty"`
	Username       string   `json:"username"`
	FullName       string   `json:"fullName,omitempty"`
	Email          string   `json:"email,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Avatar         string   `json:"avatar,omitempty"`
	Verified       bool     `json:"isVerified,omitempty"`
	Followers      Count    `json:"followers,omitempty"`
	Following      Count    `json:"following,omitempty"`
	FollowersCount Count    `json:"followersCount,omitempty"`
	FollowingCount Count    `json:"followingCount,omitempty"`
	PostsCount     Count    `json:"postsCount,omitempty"`
	Posts          PostList `json:"posts,omitempty"`
}

// Key returns the canonical identifier of the user, whichever
// field the backend filled on this payload
func (u *User) Key() string {
	if u.LegacyID != "" {
		return u.LegacyID
	}
	if u.ID != "" {
		return u.ID
	}
	return u.Username
}

// Same reports whether both users designate the same account,
// trying every identifier field the backend has used
func (u *User) Same(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	if u.LegacyID != "" && (u.LegacyID == other.LegacyID || u.LegacyID == other.ID) {
		return true
	}
	if u.ID != "" && (u.ID == other.LegacyID || u.ID == other.ID) {
		return true
	}
	return u.Username != "" && u.Username == other.Username
}

// Picture returns the profile picture of the user, or a stable
// default derived from the username
func (u *User) Picture() string {
	if u.ProfilePicture != "" {
		return u.ProfilePicture
	}
	if u.Avatar != "" {
		return u.Avatar
	}
	return DefaultAvatar + "?u=" + u.Username
}

// FollowerTotal returns the followers number, counted from the
// collection when no explicit counter was sent
func (u *User) FollowerTotal() int64 {
	if u.FollowersCount > 0 {
		return int64(u.FollowersCount)
	}
	return int64(u.Followers)
}

// FollowingTotal returns the following number
func (u *User) FollowingTotal() int64 {
	if u.FollowingCount > 0 {
		return int64(u.FollowingCount)
	}
	return int64(u.Following)
}

// PostTotal returns the number of posts owned by the user
func (u *User) PostTotal() int64 {
	if u.PostsCount > 0 {
		return int64(u.PostsCount)
	}
	if u.Posts.Items != nil {
		return int64(len(u.Posts.Items))
	}
	return u.Posts.Count
}
