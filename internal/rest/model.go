package rest

import "time"

type Message struct {
	Message string `json:"message"`
}

type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Image     *string   `json:"image"`
	Author    string    `json:"author"`
	Category  *string   `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type BlogDetail struct {
	Blog
	Content string `json:"content"`
}

type BlogPage struct {
	Count    int    `json:"count"`
	Next     *int   `json:"next"`
	Previous *int   `json:"previous"`
	Results  []Blog `json:"results"`
}

// BlogListRequest is decoded from the query string with urlstruct.
type BlogListRequest struct {
	Page       int
	PageSize   int
	DateFrom   string
	DateTo     string
	AuthorID   *int
	CategoryID *int
	Tags       []string
	Search     string
}

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	BlogID    int       `json:"blog_id"`
	ParentID  *int      `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	Children  []Comment `json:"children"`
}

type CommentList struct {
	Count   int       `json:"count"`
	Results []Comment `json:"results"`
}

type CommentRequest struct {
	Content  string `json:"content" validate:"required"`
	ParentID *int   `json:"parent_id"`
}

type CommentUpdateRequest struct {
	Content string `json:"content" validate:"required"`
}

type Category struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	ParentID *int       `json:"parent_id"`
	Children []Category `json:"children"`
}

type CategoryList struct {
	Count   int        `json:"count"`
	Results []Category `json:"results"`
}

type CategoryRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	ParentID *int   `json:"parent_id"`
}

type MenuItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type Menu struct {
	Items []MenuItem `json:"items"`
}

type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type Profile struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfileImage *string `json:"profile_image"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type ResetPasswordConfirmRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
