package models

type RegisterRequest struct {
	Username       string `json:"username" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,max=254"`
	Password       string `json:"password" validate:"required,max=72"`
	ProfilePicture string `json:"profilePicture"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token string
	User  User
}

type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl"`
}

type UpdatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
}

func (r UpdatePostRequest) Patch() PostPatch {
	return PostPatch{Title: r.Title, Content: r.Content, ImageURL: r.ImageURL}
}

type PostListParams struct {
	Page  int
	Limit int
}

type PostPage struct {
	Items       []Post
	Page        int
	Limit       int
	Total       int64
	HasNextPage bool
}

type PostDetail struct {
	Post   Post
	Author User
}

// Envelope is embedded in every response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type InsertResponse struct {
	Envelope
	InsertedID string `json:"insertedId"`
}

type UserResponse struct {
	Envelope
	User
}

type UserListResponse struct {
	Envelope
	Data []User `json:"data"`
}

type PostResponse struct {
	Envelope
	Post
	AuthorData User `json:"authorData"`
}

type PostListResponse struct {
	Envelope
	Pagination Pagination `json:"pagination"`
	Data       []Post     `json:"data"`
}

type PostsResponse struct {
	Envelope
	Data []Post `json:"data"`
}

type Pagination struct {
	CurrentCount int             `json:"currentCount"`
	TotalPosts   int64           `json:"totalPosts"`
	HasNextPage  bool            `json:"has_next_page"`
	CurrentPage  int             `json:"current_page"`
	TotalPages   int             `json:"total_pages"`
	Links        PaginationLinks `json:"links"`
}

type PaginationLinks struct {
	Previous string `json:"previous"`
	Next     string `json:"next"`
	First    string `json:"first"`
	Last     string `json:"last"`
}

type ValidationErrorResponse struct {
	Envelope
	Errors map[string][]string `json:"errors"`
}

type HealthResponse struct {
	Envelope
	Status string `json:"status"`
}
