package routes

import (
	"backend/controllers"

	"github.com/gin-gonic/gin"
)

// Deps is everything the router serves; main builds and injects it.
type Deps struct {
	Meals *controllers.MealController
	Feed  *controllers.FeedController

	// StaticImageRoot serves stored images when the disk backend is in
	// use; empty means another layer (CDN) serves them.
	StaticImageRoot string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	meals := r.Group("/meals")
	{
		meals.GET("", d.Meals.ListMeals)
		meals.POST("", d.Meals.ShareMeal)
		meals.GET("/feed", d.Feed.MealsFeed)
		meals.GET("/:slug", d.Meals.GetMeal)
	}

	if d.StaticImageRoot != "" {
		r.Static("/images", d.StaticImageRoot)
	}

	return r
}
