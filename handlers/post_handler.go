package handlers

import (
	"blogify/helper"
	"blogify/middleware"
	"blogify/models"
	"blogify/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: h}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), middleware.CurrentEmail(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.InsertResponse{
		Envelope:   models.Envelope{Success: true},
		InsertedID: post.ID.Hex(),
	})
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	result, err := h.postService.ListPosts(c.Request.Context(), h.Helper.ParsePaging(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.PostListResponse{
		Envelope:   models.Envelope{Success: true},
		Pagination: h.Helper.GeneratePaging(c, result),
		Data:       nonNilPosts(result.Items),
	})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	detail, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.PostResponse{
		Envelope:   models.Envelope{Success: true},
		Post:       detail.Post,
		AuthorData: detail.Author,
	})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req models.UpdatePostRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	err := h.postService.UpdatePost(c.Request.Context(), c.Param("id"), middleware.CurrentEmail(c), req.Patch())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, nil)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	err := h.postService.DeletePost(c.Request.Context(), c.Param("id"), middleware.CurrentEmail(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, nil)
}

func (h *PostHandler) GetMyPosts(c *gin.Context) {
	posts, err := h.postService.ListPostsByAuthor(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, models.PostsResponse{
		Envelope: models.Envelope{Success: true},
		Data:     nonNilPosts(posts),
	})
}

func nonNilPosts(posts []models.Post) []models.Post {
	if posts == nil {
		return []models.Post{}
	}
	return posts
}
