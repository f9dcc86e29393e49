package controllers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	share  *services.ShareService
	reader services.MealReader
}

func NewMealController(share *services.ShareService, reader services.MealReader) *MealController {
	return &MealController{share: share, reader: reader}
}

type shareMealForm struct {
	Title        string                `form:"title" binding:"required"`
	Name         string                `form:"name" binding:"required"`
	Email        string                `form:"email" binding:"required,email"`
	Summary      string                `form:"summary" binding:"required"`
	Instructions string                `form:"instructions" binding:"required"`
	Image        *multipart.FileHeader `form:"image" binding:"required"`
}

// ShareMeal accepts the multipart submission form and runs the ingestion
// pipeline. On success the caller gets the new slug and redirects itself.
func (mc *MealController) ShareMeal(c *gin.Context) {
	var form shareMealForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := form.Image.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image upload"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image upload"})
		return
	}

	slug, err := mc.share.Submit(c.Request.Context(), services.Submission{
		Title:        form.Title,
		Creator:      form.Name,
		CreatorEmail: form.Email,
		Summary:      form.Summary,
		Instructions: form.Instructions,
		ImageName:    form.Image.Filename,
		Image:        data,
	})
	if err != nil {
		shareError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slug": slug})
}

func shareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, gin.H{"error": "a meal with this title already exists"})
	default:
		// Storage details stay in the log, not the response.
		log.Printf("share meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store the meal"})
	}
}

// MealSummary is the listing view of a meal.
type MealSummary struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Creator string `json:"creator"`
	Image   string `json:"image"`
}

func (mc *MealController) ListMeals(c *gin.Context) {
	meals, err := mc.reader.List()
	if err != nil {
		log.Printf("list meals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load meals"})
		return
	}
	out := make([]MealSummary, 0, len(meals))
	for _, m := range meals {
		out = append(out, MealSummary{
			Slug:    m.Slug,
			Title:   m.Title,
			Summary: m.Summary,
			Creator: m.Creator,
			Image:   m.Image,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	meal, err := mc.reader.GetBySlug(c.Param("slug"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		log.Printf("get meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load meal"})
		return
	}
	c.JSON(http.StatusOK, meal)
}
