package handler

import (
	"talkify/internal/api/dto"
	"talkify/internal/pkg/response"
	"talkify/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
	}
}

func (s *PostActionHandler) LikePost(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := s.actionSvc.LikePost(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Post liked"})
}

func (s *PostActionHandler) UnlikePost(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := s.actionSvc.UnlikePost(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Post unliked"})
}

func (s *PostActionHandler) GetLikeState(c *gin.Context) {
	userID := c.GetString("user_id")

	liked, err := s.actionSvc.IsLiked(c.Request.Context(), userID, c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.LikeStateDTO{Liked: liked})
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	comments, err := s.actionSvc.GetComments(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.AddComment(c.Request.Context(), userID, c.Param("post_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, comment)
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")

	err := s.actionSvc.DeleteComment(c.Request.Context(), userID, c.Param("post_id"), c.Param("comment_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.DeletedDTO{Message: "Comment deleted successfully"})
}
