package api

import (
	"net/http" // HTTP status codes
	"sort"     // Stable route ordering
	"strconv"  // String conversion

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
	"gorm.io/gorm"                // GORM ORM library
)

// SetupRouter wires every route onto a gin engine. The store handle is
// injected into each handler; no handler touches global state.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default() // Gin router instance
	r.Use(cors.Default()) // Allow cross-origin requests from any origin

	r.GET("/", SitemapHandler(r)) // Route index

	// User routes
	r.GET("/users", ListUsersHandler(db))                            // List users
	r.POST("/user", CreateUserHandler(db))                           // Create user
	r.GET("/users/:user_id", GetUserHandler(db))                     // Get user
	r.PUT("/users/:user_id", UpdateUserHandler(db))                  // Update user
	r.DELETE("/users/:user_id", DeleteUserHandler(db))               // Delete user
	r.GET("/users/:user_id/favorites", ListUserFavoritesHandler(db)) // List user favorites

	// Character routes
	r.GET("/people", ListPeopleHandler(db))                // List characters
	r.POST("/people", CreatePersonHandler(db))             // Create character
	r.GET("/people/:person_id", GetPersonHandler(db))      // Get character
	r.PUT("/people/:person_id", UpdatePersonHandler(db))   // Update character
	r.DELETE("/people/:person_id", DeletePersonHandler(db)) // Delete character

	// Planet routes
	r.GET("/planets", ListPlanetsHandler(db))                 // List planets
	r.POST("/planets", CreatePlanetHandler(db))               // Create planet
	r.GET("/planets/:planet_id", GetPlanetHandler(db))        // Get planet
	r.PUT("/planets/:planet_id", UpdatePlanetHandler(db))     // Update planet
	r.DELETE("/planets/:planet_id", DeletePlanetHandler(db))  // Delete planet

	// Favorite routes
	fav := r.Group("/favorite")
	fav.POST("/planet/:user_id/:planet_id", AddFavoritePlanetHandler(db)) // Add planet favorite
	fav.DELETE("/planet/:planet_id", RemoveFavoritePlanetHandler(db))     // Remove planet favorite
	fav.POST("/people/:people_id", AddFavoritePersonHandler(db))          // Add character favorite
	fav.DELETE("/people/:people_id", RemoveFavoritePersonHandler(db))     // Remove character favorite

	// Admin routes (read/delete browser over every registered model)
	admin := r.Group("/admin")
	admin.GET("", AdminIndexHandler())                   // List resources
	admin.GET("/:resource", AdminListHandler(db))        // Dump a resource
	admin.DELETE("/:resource/:id", AdminDeleteHandler(db)) // Delete a row

	return r
}

// SitemapHandler lists every registered route as a plain index
func SitemapHandler(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := make([]string, 0, len(r.Routes())) // Route descriptions
		for _, route := range r.Routes() {
			routes = append(routes, route.Method+" "+route.Path)
		}
		sort.Strings(routes)                                  // Deterministic order
		c.JSON(http.StatusOK, gin.H{"routes": routes}) // Return the route index
	}
}

// pathID parses a numeric path parameter, replying bad request when it is
// not a positive number
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		// If invalid, return bad request
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parámetro " + name + " inválido"})
		return 0, false
	}
	return uint(v), true
}
