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

// UserController manages CRUD operations for users.
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a new UserController instance.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

type userForm struct {
	FirstName string `form:"first_name" binding:"required,max=15"`
	LastName  string `form:"last_name" binding:"required,max=15"`
	ImageURL  string `form:"image_url"`
}

// ListUsers shows all users ordered by last then first name.
func (u *UserController) ListUsers(ctx *gin.Context) {
	var users []models.User
	if err := u.db.Order("last_name, first_name").Find(&users).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to list users")
		return
	}
	web.HTML(ctx, http.StatusOK, "users.html", gin.H{"Users": users})
}

// NewUserForm shows the create form.
func (u *UserController) NewUserForm(ctx *gin.Context) {
	web.HTML(ctx, http.StatusOK, "user_new.html", gin.H{})
}

// CreateUser adds a user from submitted form data and redirects to the user list.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req userForm
	if err := ctx.ShouldBind(&req); err != nil {
		web.Error(ctx, http.StatusBadRequest, "first name and last name are required")
		return
	}

	user := models.User{
		FirstName: utils.SanitizePlain(req.FirstName),
		LastName:  utils.SanitizePlain(req.LastName),
		ImageURL:  req.ImageURL,
	}
	if user.FirstName == "" || user.LastName == "" {
		web.Error(ctx, http.StatusBadRequest, "first name and last name are required")
		return
	}

	if err := u.db.Create(&user).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to create user")
		return
	}

	ctx.Redirect(http.StatusFound, "/users")
}

// GetUser shows a user with their posts.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := u.db.Preload("Posts").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "user not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	web.HTML(ctx, http.StatusOK, "user_detail.html", gin.H{"User": user})
}

// EditUserForm shows the edit form for a user.
func (u *UserController) EditUserForm(ctx *gin.Context) {
	id, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "user not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	web.HTML(ctx, http.StatusOK, "user_edit.html", gin.H{"User": user})
}

// UpdateUser overwrites the user's fields from submitted form data.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "user not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	var req userForm
	if err := ctx.ShouldBind(&req); err != nil {
		web.Error(ctx, http.StatusBadRequest, "first name and last name are required")
		return
	}

	user.FirstName = utils.SanitizePlain(req.FirstName)
	user.LastName = utils.SanitizePlain(req.LastName)
	user.ImageURL = req.ImageURL
	if err := u.db.Save(&user).Error; err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to update user")
		return
	}

	ctx.Redirect(http.StatusFound, "/users")
}

// DeleteUser removes a user together with their posts and those posts' tag links.
// The whole cascade is one transaction.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			web.NotFound(ctx, "user not found")
			return
		}
		web.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}

	err := u.db.Transaction(func(tx *gorm.DB) error {
		var posts []models.Post
		if err := tx.Where("user_id = ?", user.ID).Find(&posts).Error; err != nil {
			return err
		}
		for i := range posts {
			if err := tx.Model(&posts[i]).Association("Tags").Clear(); err != nil {
				return err
			}
		}
		if len(posts) > 0 {
			if err := tx.Delete(&posts).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		web.Error(ctx, http.StatusInternalServerError, "failed to delete user")
		return
	}

	ctx.Redirect(http.StatusFound, "/users")
}
