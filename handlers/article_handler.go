package handlers

import (
	"strconv"

	"news-portal-api/helper"
	"news-portal-api/models"
	"news-portal-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	feedService    services.FeedService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, feedService services.FeedService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		feedService:    feedService,
		Helper:         &helper.HTTPHelper{},
	}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.Create(userID.(uint), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article created", article)
}

// GetArticles is the role-filtered feed for authenticated users.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.feedService.ArticleFeed(userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article id", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.Get(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article id", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.Update(userID.(uint), uint(id), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article id", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.articleService.Delete(userID.(uint), uint(id)); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) ApproveArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article id", h.Helper.EmptyJsonMap())
		return
	}

	resp, err := h.articleService.Approve(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	message := "Article approved"
	if resp.NotifyFailed {
		message = "Article approved but announcement failed to send"
	}
	h.Helper.SendSuccess(c, message, resp)
}

// GetPendingArticles is the editor's approval queue.
func (h *ArticleHandler) GetPendingArticles(c *gin.Context) {
	userID, _ := c.Get("user_id")

	articles, err := h.articleService.Pending(userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Pending articles loaded", articles)
}

// GetHome is the public feed: ten newest approved articles, no auth.
func (h *ArticleHandler) GetHome(c *gin.Context) {
	articles, err := h.feedService.Home()
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Home feed loaded", articles)
}

func (h *ArticleHandler) GetDashboard(c *gin.Context) {
	userID, _ := c.Get("user_id")

	dashboard, err := h.feedService.Dashboard(userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Dashboard loaded", dashboard)
}
