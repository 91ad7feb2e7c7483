package api

import (
	"net/http"                     // HTTP status codes
	"sort"                         // Stable resource ordering
	"starwars_api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// adminResource describes one model the admin browser exposes
type adminResource struct {
	rows  func() any // Factory for a slice to list into
	model func() any // Factory for a record to delete by id
}

// adminResources maps table names to their models. Registering a model here
// is all it takes to surface it in the panel.
var adminResources = map[string]adminResource{
	"usuario": {
		rows:  func() any { return &[]domain.User{} },
		model: func() any { return &domain.User{} },
	},
	"personaje": {
		rows:  func() any { return &[]domain.Character{} },
		model: func() any { return &domain.Character{} },
	},
	"planeta": {
		rows:  func() any { return &[]domain.Planet{} },
		model: func() any { return &domain.Planet{} },
	},
	"favorito": {
		rows:  func() any { return &[]domain.Favorite{} },
		model: func() any { return &domain.Favorite{} },
	},
}

// AdminIndexHandler lists the browsable resources
func AdminIndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		names := make([]string, 0, len(adminResources)) // Resource names
		for name := range adminResources {
			names = append(names, name)
		}
		sort.Strings(names)                                    // Deterministic order
		c.JSON(http.StatusOK, gin.H{"resources": names}) // Return resource names
	}
}

// AdminListHandler dumps every row of a resource
func AdminListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("resource") // Resource name from path
		res, ok := adminResources[name]
		if !ok {
			// Unknown resource, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Recurso no encontrado"})
			return
		}
		rows := res.rows() // Slice to list into
		if err := db.Find(rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los registros"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"resource": name, "rows": rows}) // Return all rows
	}
}

// AdminDeleteHandler deletes one row of a resource by id
func AdminDeleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("resource") // Resource name from path
		res, ok := adminResources[name]
		if !ok {
			// Unknown resource, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Recurso no encontrado"})
			return
		}
		id, ok := pathID(c, "id") // Parse row id from path
		if !ok {
			return
		}
		tx := db.Delete(res.model(), id) // Delete by primary key
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el registro"})
			return
		}
		if tx.RowsAffected == 0 {
			// Nothing matched the id, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"resource": name, // Resource name
			"id":       id,   // Deleted row id
		}).Info("Admin row deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado"}) // Return confirmation
	}
}
