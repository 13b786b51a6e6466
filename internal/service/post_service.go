package service

import (
	"context"
	"strings"
	"time"

	"talkify/internal/api/dto"
	"talkify/internal/model"
	"talkify/internal/pkg/util"
	"talkify/internal/repository"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// slugMaxAttempts bounds the collision loop before giving up.
const slugMaxAttempts = 3

type PostService interface {
	CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	GetPostByID(ctx context.Context, postID string) (*dto.PostDTO, error)
	GetPostBySlug(ctx context.Context, slug string) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID string, req *dto.UpdatePostDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID string) error
	ListPosts(ctx context.Context, query *dto.PostListQueryDTO) (*dto.PostListDTO, error)
	SearchPosts(ctx context.Context, query string) ([]*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	likeRepo repository.LikeRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, likeRepo repository.LikeRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		likeRepo: likeRepo,
	}
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID string, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, ErrTitleContentRequired
	}

	status := req.Status
	if status == "" {
		status = model.PostStatusPublished
	}
	if status != model.PostStatusPublished && status != model.PostStatusDraft {
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	slug, err := s.uniqueSlug(ctx, title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &model.Post{
		Title:     title,
		Content:   content,
		Author:    user.Snapshot(),
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
		Status:    status,
		ReadTime:  util.ReadTime(content),
		Views:     0,
		Likes:     0,
		Comments:  []model.Comment{},
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return toPostDTO(post), nil
}

func (s *postServiceImpl) GetPostByID(ctx context.Context, postID string) (*dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByIDIncViews(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return toPostDTO(post), nil
}

func (s *postServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetBySlugIncViews(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return toPostDTO(post), nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, userID, postID string, req *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Author.UserID != userID {
		return nil, ErrNotPostAuthor
	}

	fields := map[string]interface{}{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleContentRequired
		}
		if title != post.Title {
			fields["title"] = title
			post.Title = title

			// Only re-slug when the new base actually differs from
			// what is stored; same-slug titles keep the old slug.
			if base := util.Slugify(title); base != post.Slug {
				slug, err := s.uniqueSlug(ctx, title, id)
				if err != nil {
					return nil, err
				}
				fields["slug"] = slug
				post.Slug = slug
			}
		}
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, ErrTitleContentRequired
		}
		if content != post.Content {
			fields["content"] = content
			post.Content = content
			post.ReadTime = util.ReadTime(content)
			fields["readTime"] = post.ReadTime
		}
	}

	if req.Status != nil {
		status := *req.Status
		if status != model.PostStatusPublished && status != model.PostStatusDraft {
			return nil, ErrInvalidStatus
		}
		if status != post.Status {
			fields["status"] = status
			post.Status = status
		}
	}

	// Nothing changed: succeed without touching updatedAt.
	if len(fields) == 0 {
		return toPostDTO(post), nil
	}

	post.UpdatedAt = time.Now().UTC()
	fields["updatedAt"] = post.UpdatedAt

	if err := s.postRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	return toPostDTO(post), nil
}

// DeletePost removes the post and cascades deletion of its like records.
func (s *postServiceImpl) DeletePost(ctx context.Context, userID, postID string) error {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Author.UserID != userID {
		return ErrNotPostAuthor
	}

	deleted, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}

	_, err = s.likeRepo.DeleteByPost(ctx, id)
	return err
}

func (s *postServiceImpl) ListPosts(ctx context.Context, query *dto.PostListQueryDTO) (*dto.PostListDTO, error) {
	if query.Page < 1 || query.Limit < 1 || query.Limit > 50 {
		return nil, ErrInvalidPagination
	}

	status := query.Status
	if status == "all" {
		status = ""
	}

	posts, total, err := s.postRepo.List(ctx, status, query.Author, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	limit := int64(query.Limit)
	return &dto.PostListDTO{
		Posts: toPostDTOs(posts),
		Pagination: dto.PaginationDTO{
			Total:      total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

func (s *postServiceImpl) SearchPosts(ctx context.Context, query string) ([]*dto.PostDTO, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrSearchQueryRequired
	}

	posts, err := s.postRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return toPostDTOs(posts), nil
}

// uniqueSlug derives the base slug and resolves collisions with a short
// random suffix taken from a fresh object id. The caller's own post is
// excluded from the check so no-op title updates keep their slug.
func (s *postServiceImpl) uniqueSlug(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	base := util.Slugify(title)
	candidate := base

	for attempt := 0; attempt < slugMaxAttempts; attempt++ {
		taken, err := s.postRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}

		suffix := primitive.NewObjectID().Hex()
		candidate = base + "-" + suffix[len(suffix)-6:]
	}

	return "", ErrSlugConflict
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.Copy(out, post)
	out.ID = post.ID.Hex()
	if out.Comments == nil {
		out.Comments = []*dto.CommentDTO{}
	}
	return out
}

func toPostDTOs(posts []*model.Post) []*dto.PostDTO {
	out := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostDTO(p))
	}
	return out
}
