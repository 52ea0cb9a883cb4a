package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogly/models"
	"blogly/utils"
	"blogly/web"
)

// PostController manages CRUD operations for posts, including their tag set.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

type postForm struct {
	Title   string   `form:"title" binding:"required,max=100"`
	Content string   `form:"content" binding:"required"`
	Tags    []string `form:"tags"`
}

// NewPostForm shows the create form for a post under a given user, with the full
// tag list for the multi-select.
func (p *PostController) NewPostForm(ctx *gin.Context) {
	userID, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "user not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	var tags []models.Tag
	if err := p.db.Order("name").Find(&tags).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to list tags")
		return
	}

	web.HTML(ctx, http.StatusOK, "post_new.html", gin.H{"User": user, "Tags": tags})
}

// CreatePost adds a post for a user, attaching the selected tags, and redirects
// to the user's detail page. Post and tag links are written in one transaction.
func (p *PostController) CreatePost(ctx *gin.Context) {
	userID, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "user not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	var req postForm
	if err := ctx.ShouldBind(&req); err != nil {
		web.Error(ctx, http.StatusBadRequest, "title and content are required")
		return
	}

	tags, ok := p.resolveTags(ctx, req.Tags)
	if !ok {
		return
	}

	post := models.Post{
		Title:   utils.SanitizePlain(req.Title),
		Content: utils.Sanitize(req.Content),
		UserID:  user.ID,
		Tags:    tags,
	}
	if post.Title == "" || post.Content == "" {
		web.Error(ctx, http.StatusBadRequest, "title and content are required")
		return
	}

	if err := p.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&post).Error
	}); err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to create post")
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", user.ID))
}

// GetPost shows a post with its author and tags.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseID(ctx, "post_id")
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.Preload("User").Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "post not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	web.HTML(ctx, http.StatusOK, "post_detail.html", gin.H{"Post": post})
}

// EditPostForm shows the edit form, pre-selecting the post's current tags.
func (p *PostController) EditPostForm(ctx *gin.Context) {
	id, ok := parseID(ctx, "post_id")
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "post not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	var tags []models.Tag
	if err := p.db.Order("name").Find(&tags).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to list tags")
		return
	}

	selected := make(map[uint]bool, len(post.Tags))
	for _, t := range post.Tags {
		selected[t.ID] = true
	}

	web.HTML(ctx, http.StatusOK, "post_edit.html", gin.H{
		"Post":     post,
		"Tags":     tags,
		"Selected": selected,
	})
}

// UpdatePost overwrites title and content and replaces the whole tag set with
// the submitted one, all in one transaction.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "post_id")
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "post not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	var req postForm
	if err := ctx.ShouldBind(&req); err != nil {
		web.Error(ctx, http.StatusBadRequest, "title and content are required")
		return
	}

	tags, ok := p.resolveTags(ctx, req.Tags)
	if !ok {
		return
	}

	post.Title = utils.SanitizePlain(req.Title)
	post.Content = utils.Sanitize(req.Content)
	if post.Title == "" || post.Content == "" {
		web.Error(ctx, http.StatusBadRequest, "title and content are required")
		return
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&post).Error; err != nil {
			return err
		}
		return tx.Model(&post).Association("Tags").Replace(tags)
	})
	if err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to update post")
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", post.UserID))
}

// DeletePost removes a post and its tag links, leaving the owner and the tags
// themselves intact.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseID(ctx, "post_id")
	if !ok {
		return
	}

	var post models.Post
	if err := p.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "post not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to delete post")
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", post.UserID))
}

// resolveTags parses submitted tag ids and loads the matching tags. Malformed
// ids reject the request before anything is persisted; ids with no matching tag
// are dropped.
func (p *PostController) resolveTags(ctx *gin.Context, values []string) ([]models.Tag, bool) {
	ids, err := utils.ParseIDList(values)
	if err != nil {
		web.Error(ctx, http.StatusBadRequest, "invalid tag selection")
		return nil, false
	}
	if len(ids) == 0 {
		return []models.Tag{}, true
	}
	var tags []models.Tag
	if err := p.db.Find(&tags, ids).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to load tags")
		return nil, false
	}
	return tags, true
}
