package dto

import "time"

type AuthorDTO struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type PostDTO struct {
	ID        string        `json:"_id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Author    AuthorDTO     `json:"author"`
	Slug      string        `json:"slug"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Status    string        `json:"status"`
	ReadTime  int           `json:"readTime"`
	Views     int64         `json:"views"`
	Likes     int64         `json:"likes"`
	Comments  []*CommentDTO `json:"comments"`
}

type CreatePostDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

type UpdatePostDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

type PostListQueryDTO struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Status string `form:"status,default=published"`
	Author string `form:"author"`
}

type PaginationDTO struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type PostListDTO struct {
	Posts      []*PostDTO    `json:"posts"`
	Pagination PaginationDTO `json:"pagination"`
}

type DeletedDTO struct {
	Message string `json:"message"`
}
