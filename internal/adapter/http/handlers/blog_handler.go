package handlers

import (
	"errors"
	"net/http"

	request "arton_garage/internal/adapter/http/dto/request"
	response "arton_garage/internal/adapter/http/dto/response"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// BlogHandler serves the public blog and the AI authoring back-office.
type BlogHandler struct {
	usecase usecase.IBlogUseCase
}

func NewBlogHandler(uc usecase.IBlogUseCase) *BlogHandler {
	return &BlogHandler{usecase: uc}
}

// List godoc
// @Summary      List blog posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  entities.BlogPost
// @Router       /blog [get]
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapBlogError(err))
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	p, err := h.usecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, mapBlogError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var payload request.BlogPostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, mapBlogError(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapBlogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlogHandler) Queue(c *gin.Context) {
	c.JSON(http.StatusOK, response.BlogQueueResponse{Topics: h.usecase.Queue(c.Request.Context())})
}

func (h *BlogHandler) Enqueue(c *gin.Context) {
	var payload request.TopicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	topics, err := h.usecase.EnqueueTopic(c.Request.Context(), payload.Topic)
	if err != nil {
		writeError(c, mapBlogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.BlogQueueResponse{Topics: topics})
}

// Generate godoc
// @Summary      Generate a post with AI
// @Description  Asks the configured AI provider for a post about the topic and publishes it. Only gemini is wired.
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.TopicRequest  true  "Topic"
// @Success      201      {object}  entities.BlogPost
// @Failure      501      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /admin/blog/generate [post]
func (h *BlogHandler) Generate(c *gin.Context) {
	var payload request.TopicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.usecase.Generate(c.Request.Context(), payload.Topic)
	if err != nil {
		log.Printf("[blog][handler] generate failed topic=%q err=%v", payload.Topic, err)
		writeError(c, mapBlogError(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func mapBlogError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidBlogPostID), errors.Is(err, usecase.ErrInvalidTopic):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrBlogPostNotFound):
		return pkg.NewDomainErrorSimple("BLOG_POST_NOT_FOUND", "Blog post not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAIProviderNotSupported):
		return pkg.NewDomainErrorSimple("AI_PROVIDER_NOT_SUPPORTED", "GPT integration requires a backend proxy", http.StatusNotImplemented)
	case errors.Is(err, usecase.ErrContentGeneratorNotConfigured):
		return pkg.NewDomainErrorSimple("AI_NOT_CONFIGURED", "AI content generation not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrContentGenerationFailed):
		return pkg.NewDomainError("AI_GENERATION_FAILED", "Erro ao gerar com IA", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
