package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogly/models"
	"blogly/utils"
	"blogly/web"
)

// TagController manages CRUD operations for tags, including their post set.
type TagController struct {
	db *gorm.DB
}

// NewTagController creates a new TagController instance.
func NewTagController(db *gorm.DB) *TagController {
	return &TagController{db: db}
}

type tagForm struct {
	Name  string   `form:"name" binding:"required,max=50"`
	Posts []string `form:"posts"`
}

// ListTags shows all tags.
func (t *TagController) ListTags(ctx *gin.Context) {
	var tags []models.Tag
	if err := t.db.Order("name").Find(&tags).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to list tags")
		return
	}
	web.HTML(ctx, http.StatusOK, "tags.html", gin.H{"Tags": tags})
}

// NewTagForm shows the create form with the full post list for the multi-select.
func (t *TagController) NewTagForm(ctx *gin.Context) {
	var posts []models.Post
	if err := t.db.Find(&posts).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}
	web.HTML(ctx, http.StatusOK, "tag_new.html", gin.H{"Posts": posts})
}

// CreateTag adds a tag with an initial post set and redirects to the tag list.
// A duplicate name is a conflict, not a crash, and leaves the table unchanged.
func (t *TagController) CreateTag(ctx *gin.Context) {
	var req tagForm
	if err := ctx.ShouldBind(&req); err != nil {
		web.Error(ctx, http.StatusBadRequest, "name is required")
		return
	}

	posts, ok := t.resolvePosts(ctx, req.Posts)
	if !ok {
		return
	}

	tag := models.Tag{
		Name:  utils.SanitizePlain(req.Name),
		Posts: posts,
	}
	if tag.Name == "" {
		web.Error(ctx, http.StatusBadRequest, "name is required")
		return
	}

	err := t.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tag).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			web.Error(ctx, http.StatusConflict, "a tag with that name already exists")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to create tag")
		return
	}

	ctx.Redirect(http.StatusFound, "/tags")
}

// GetTag shows a tag with its posts.
func (t *TagController) GetTag(ctx *gin.Context) {
	id, ok := parseID(ctx, "tag_id")
	if !ok {
		return
	}

	var tag models.Tag
	if err := t.db.Preload("Posts").First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "tag not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load tag")
		return
	}

	web.HTML(ctx, http.StatusOK, "tag_detail.html", gin.H{"Tag": tag})
}

// EditTagForm shows the edit form, pre-selecting the tag's current posts.
func (t *TagController) EditTagForm(ctx *gin.Context) {
	id, ok := parseID(ctx, "tag_id")
	if !ok {
		return
	}

	var tag models.Tag
	if err := t.db.Preload("Posts").First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "tag not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load tag")
		return
	}

	var posts []models.Post
	if err := t.db.Find(&posts).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}

	selected := make(map[uint]bool, len(tag.Posts))
	for _, p := range tag.Posts {
		selected[p.ID] = true
	}

	web.HTML(ctx, http.StatusOK, "tag_edit.html", gin.H{
		"Tag":      tag,
		"Posts":    posts,
		"Selected": selected,
	})
}

// UpdateTag renames a tag and replaces its whole post set with the submitted
// one, all in one transaction.
func (t *TagController) UpdateTag(ctx *gin.Context) {
	id, ok := parseID(ctx, "tag_id")
	if !ok {
		return
	}

	var tag models.Tag
	if err := t.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "tag not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load tag")
		return
	}

	var req tagForm
	if err := ctx.ShouldBind(&req); err != nil {
		web.Error(ctx, http.StatusBadRequest, "name is required")
		return
	}

	posts, ok := t.resolvePosts(ctx, req.Posts)
	if !ok {
		return
	}

	tag.Name = utils.SanitizePlain(req.Name)
	if tag.Name == "" {
		web.Error(ctx, http.StatusBadRequest, "name is required")
		return
	}

	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&tag).Error; err != nil {
			return err
		}
		return tx.Model(&tag).Association("Posts").Replace(posts)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			web.Error(ctx, http.StatusConflict, "a tag with that name already exists")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to update tag")
		return
	}

	ctx.Redirect(http.StatusFound, "/tags")
}

// DeleteTag removes a tag and its post links, leaving the posts intact.
func (t *TagController) DeleteTag(ctx *gin.Context) {
	id, ok := parseID(ctx, "tag_id")
	if !ok {
		return
	}

	var tag models.Tag
	if err := t.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "tag not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load tag")
		return
	}

	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
	if err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to delete tag")
		return
	}

	ctx.Redirect(http.StatusFound, "/tags")
}

// resolvePosts parses submitted post ids and loads the matching posts.
// Malformed ids reject the request before anything is persisted.
func (t *TagController) resolvePosts(ctx *gin.Context, values []string) ([]models.Post, bool) {
	ids, err := utils.ParseIDList(values)
	if err != nil {
		web.Error(ctx, http.StatusBadRequest, "invalid post selection")
		return nil, false
	}
	if len(ids) == 0 {
		return []models.Post{}, true
	}
	var posts []models.Post
	if err := t.db.Find(&posts, ids).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to load posts")
		return nil, false
	}
	return posts, true
}
