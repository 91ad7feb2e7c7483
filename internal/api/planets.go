package api

import (
	"net/http"                     // HTTP status codes
	"starwars_api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for planet creation
type CreatePlanetRequest struct {
	Nombre  string `json:"nombre"`  // Name
	Clima   string `json:"clima"`   // Climate
	Terreno string `json:"terreno"` // Terrain
}

// Request struct for planet update; pointer fields distinguish "omitted" from "empty"
type UpdatePlanetRequest struct {
	Nombre  *string `json:"nombre"`  // New name, optional
	Clima   *string `json:"clima"`   // New climate, optional
	Terreno *string `json:"terreno"` // New terrain, optional
}

// ListPlanetsHandler returns all planets
func ListPlanetsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var planets []domain.Planet // Slice to hold planets
		if err := db.Find(&planets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los planetas"})
			return
		}
		resp := make([]map[string]any, 0, len(planets)) // Serialized planets
		for i := range planets {
			resp = append(resp, planets[i].Serialize()) // Serialize each planet
		}
		c.JSON(http.StatusOK, resp) // Return all planets
	}
}

// GetPlanetHandler returns a single planet by id
func GetPlanetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		planetID, ok := pathID(c, "planet_id") // Parse id from path
		if !ok {
			return
		}
		var planet domain.Planet // Fetch planet from database
		if err := db.First(&planet, planetID).Error; err != nil {
			// If planet not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Planeta no encontrado"})
			return
		}
		c.JSON(http.StatusOK, planet.Serialize()) // Return the planet
	}
}

// CreatePlanetHandler inserts a new planet
func CreatePlanetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePlanetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición inválido"})
			return
		}
		planet := domain.Planet{Nombre: req.Nombre, Clima: req.Clima, Terreno: req.Terreno}
		// Attempt to create the planet in the database
		if err := db.Create(&planet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el planeta"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"planet_id": planet.ID,     // New planet ID
			"nombre":    planet.Nombre, // Name
		}).Info("Planet created")
		c.JSON(http.StatusCreated, planet.Serialize()) // Return the new planet
	}
}

// UpdatePlanetHandler overwrites the provided fields, preserving the rest
func UpdatePlanetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		planetID, ok := pathID(c, "planet_id") // Parse id from path
		if !ok {
			return
		}
		var planet domain.Planet // Fetch planet from database
		if err := db.First(&planet, planetID).Error; err != nil {
			// If planet not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Planeta no encontrado"})
			return
		}
		var req UpdatePlanetRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición inválido"})
			return
		}
		// Overwrite only the fields the request carried
		if req.Nombre != nil {
			planet.Nombre = *req.Nombre
		}
		if req.Clima != nil {
			planet.Clima = *req.Clima
		}
		if req.Terreno != nil {
			planet.Terreno = *req.Terreno
		}
		// Persist the merged record
		if err := db.Save(&planet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el planeta"})
			return
		}
		c.JSON(http.StatusOK, planet.Serialize()) // Return the updated planet
	}
}

// DeletePlanetHandler removes a planet; favorites referencing it go with it
// via the cascade constraint
func DeletePlanetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		planetID, ok := pathID(c, "planet_id") // Parse id from path
		if !ok {
			return
		}
		var planet domain.Planet // Fetch planet from database
		if err := db.First(&planet, planetID).Error; err != nil {
			// If planet not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Planeta no encontrado"})
			return
		}
		// Delete the planet; the store cascades to referencing favorites
		if err := db.Delete(&planet).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el planeta"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"planet_id": planet.ID, // Deleted planet ID
		}).Info("Planet deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Planeta eliminado"}) // Return confirmation
	}
}
