package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrLoginTokenRequired   = errors.New("Token is required")
	ErrInvalidGoogleToken   = errors.New("Invalid token")
	ErrUserNotFound         = errors.New("User not found")
	ErrPostNotFound         = errors.New("Post not found")
	ErrCommentNotFound      = errors.New("Comment not found")
	ErrTitleContentRequired = errors.New("Title and content are required")
	ErrCommentRequired      = errors.New("Comment content is required")
	ErrSearchQueryRequired  = errors.New("Search query is required")
	ErrInvalidPagination    = errors.New("Invalid pagination parameters")
	ErrInvalidStatus        = errors.New("Invalid post status")
	ErrInvalidPrice         = errors.New("Invalid price")
	ErrNotPostAuthor        = errors.New("You are not the author of this post")
	ErrNotCommentAuthor     = errors.New("You are not allowed to delete this comment")
	ErrSlugConflict         = errors.New("Could not generate a unique slug")
)

var ErrorMap = map[error]int{
	ErrLoginTokenRequired:   BadRequest,
	ErrInvalidGoogleToken:   Unauthorized,
	ErrUserNotFound:         NotFound,
	ErrPostNotFound:         NotFound,
	ErrCommentNotFound:      NotFound,
	ErrTitleContentRequired: BadRequest,
	ErrCommentRequired:      BadRequest,
	ErrSearchQueryRequired:  BadRequest,
	ErrInvalidPagination:    BadRequest,
	ErrInvalidStatus:        BadRequest,
	ErrInvalidPrice:         BadRequest,
	ErrNotPostAuthor:        Unauthorized,
	ErrNotCommentAuthor:     Unauthorized,
	ErrSlugConflict:         Conflict,
}
