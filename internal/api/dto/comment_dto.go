package dto

import "time"

type CommentDTO struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	Author    AuthorDTO `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int64     `json:"likes"`
}

type CreateCommentDTO struct {
	Content string `json:"content"`
}

type LikeStateDTO struct {
	Liked bool `json:"liked"`
}
