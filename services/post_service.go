package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"blogify/models"
	"blogify/repositories"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PostService interface {
	CreatePost(ctx context.Context, authorEmail string, req models.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context, params models.PostListParams) (*models.PostPage, error)
	GetPost(ctx context.Context, id string) (*models.PostDetail, error)
	UpdatePost(ctx context.Context, id, requesterEmail string, patch models.PostPatch) error
	DeletePost(ctx context.Context, id, requesterEmail string) error
	ListPostsByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error)
}

type postService struct {
	postRepo     repositories.PostRepository
	userRepo     repositories.UserRepository
	defaultLimit int
}

func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, defaultLimit int) PostService {
	if defaultLimit < 1 || defaultLimit > MaxPageSize {
		defaultLimit = DefaultPageSize
	}
	return &postService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		defaultLimit: defaultLimit,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorEmail string, req models.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, models.ErrorInvalidInput{Message: models.MsgInvalidBody}
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		imageURL = models.DefaultPostImage
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        tags,
		ImageURL:    imageURL,
		AuthorEmail: authorEmail,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, internalError(err)
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, params models.PostListParams) (*models.PostPage, error) {
	page, limit := params.Page, params.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	total, err := s.postRepo.EstimatedCount(ctx)
	if err != nil {
		return nil, internalError(err)
	}

	result := &models.PostPage{
		Items: []models.Post{},
		Page:  page,
		Limit: limit,
		Total: total,
	}

	// Pages whose offset does not fit in an int are past the end.
	if page > math.MaxInt/limit {
		return result, nil
	}

	items, err := s.postRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, internalError(err)
	}
	result.Items = items
	result.HasNextPage = int64(page*limit) < total
	return result, nil
}

// GetPost joins the author's profile. A post whose author record is gone is
// reported as not found.
func (s *postService) GetPost(ctx context.Context, id string) (*models.PostDetail, error) {
	post, err := s.loadPost(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByEmail(ctx, post.AuthorEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrorNotFound{Message: models.MsgAuthorNotFound}
		}
		return nil, internalError(err)
	}

	return &models.PostDetail{Post: *post, Author: *author}, nil
}

func (s *postService) UpdatePost(ctx context.Context, id, requesterEmail string, patch models.PostPatch) error {
	post, err := s.loadOwnedPost(ctx, id, requesterEmail)
	if err != nil {
		return err
	}

	if !patch.HasBody() {
		return models.ErrorInvalidInput{Message: models.MsgInvalidBody}
	}

	updated := patch.Apply(*post)
	if updated.Title == post.Title && updated.Content == post.Content && updated.ImageURL == post.ImageURL {
		return models.ErrorInternalServer{Message: models.MsgNothingUpdated}
	}

	modified, err := s.postRepo.Update(ctx, &updated)
	if err != nil {
		return internalError(err)
	}
	if !modified {
		return models.ErrorInternalServer{Message: models.MsgNothingUpdated}
	}
	return nil
}

func (s *postService) DeletePost(ctx context.Context, id, requesterEmail string) error {
	post, err := s.loadOwnedPost(ctx, id, requesterEmail)
	if err != nil {
		return err
	}

	deleted, err := s.postRepo.Delete(ctx, post.ID)
	if err != nil {
		return internalError(err)
	}
	if !deleted {
		return models.ErrorInternalServer{Message: models.MsgDeleteFailed}
	}
	return nil
}

func (s *postService) ListPostsByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorEmail)
	if err != nil {
		return nil, internalError(err)
	}
	return posts, nil
}

func (s *postService) loadPost(ctx context.Context, id string) (*models.Post, error) {
	objID, err := repositories.ParseID(id)
	if err != nil {
		return nil, models.ErrorInvalidInput{Message: models.MsgInvalidItemID}
	}

	post, err := s.postRepo.GetByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, models.ErrorNotFound{Message: models.MsgItemNotFound}
		}
		return nil, internalError(err)
	}
	return post, nil
}

// loadOwnedPost is the ownership gate shared by update and delete.
func (s *postService) loadOwnedPost(ctx context.Context, id, requesterEmail string) (*models.Post, error) {
	post, err := s.loadPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorEmail != requesterEmail {
		return nil, models.ErrorForbidden{Message: models.MsgForbidden}
	}
	return post, nil
}
