package routes

import (
	"net/http"

	"dietcalc/controllers"
	"dietcalc/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to DietCalc API"})
	})

	foods := r.Group("/foods")
	{
		foods.GET("", controllers.ListFoods)
		foods.GET("/categories", controllers.ListCategories)
		foods.GET("/:id", controllers.GetFood)
		foods.POST("", controllers.CreateFood)
		foods.PUT("/:id", controllers.UpdateFood)
		foods.DELETE("/:id", controllers.DeleteFood)
	}

	measures := r.Group("/measures")
	{
		measures.GET("/:food_id", controllers.ListMeasures)
		measures.POST("", controllers.CreateMeasure)
		measures.DELETE("/:id", controllers.DeleteMeasure)
	}

	meals := r.Group("/meals")
	{
		meals.POST("", controllers.CreateMeal)
		meals.GET("", controllers.ListMeals)
		meals.GET("/:id", controllers.GetMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
		meals.POST("/:id/items", controllers.AddMealItem)
		meals.DELETE("/:id/items/:item_id", controllers.RemoveMealItem)
	}

	profile := r.Group("/profile")
	{
		profile.GET("", controllers.GetProfile)
		profile.POST("", controllers.SaveProfile)
	}

	r.POST("/nutrition/calculate", controllers.CalculateNutrition)

	return r
}
