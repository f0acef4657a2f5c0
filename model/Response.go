package model

// APIStatus is the envelope mutation endpoints answer with
type APIStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse defines how register and sign-in answers must be
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// ProfileResponse wraps a single user payload
type ProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// PostsResponse wraps a post collection
type PostsResponse struct {
	Success bool   `json:"success,omitempty"`
	Posts   []Post `json:"posts"`
}

// UsersResponse wraps a user collection
type UsersResponse struct {
	Success bool   `json:"success,omitempty"`
	Users   []User `json:"users"`
}
