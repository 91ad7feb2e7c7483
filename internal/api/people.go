package api

import (
	"net/http"                     // HTTP status codes
	"starwars_api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for character creation
type CreateCharacterRequest struct {
	Nombre     string `json:"nombre"`     // Name
	Genero     string `json:"genero"`     // Gender
	Nacimiento string `json:"nacimiento"` // Birth date
}

// Request struct for character update; pointer fields distinguish "omitted" from "empty"
type UpdateCharacterRequest struct {
	Nombre     *string `json:"nombre"`     // New name, optional
	Genero     *string `json:"genero"`     // New gender, optional
	Nacimiento *string `json:"nacimiento"` // New birth date, optional
}

// ListPeopleHandler returns all characters
func ListPeopleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var people []domain.Character // Slice to hold characters
		if err := db.Find(&people).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los personajes"})
			return
		}
		resp := make([]map[string]any, 0, len(people)) // Serialized characters
		for i := range people {
			resp = append(resp, people[i].Serialize()) // Serialize each character
		}
		c.JSON(http.StatusOK, resp) // Return all characters
	}
}

// GetPersonHandler returns a single character by id
func GetPersonHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, ok := pathID(c, "person_id") // Parse id from path
		if !ok {
			return
		}
		var person domain.Character // Fetch character from database
		if err := db.First(&person, personID).Error; err != nil {
			// If character not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Personaje no encontrado"})
			return
		}
		c.JSON(http.StatusOK, person.Serialize()) // Return the character
	}
}

// CreatePersonHandler inserts a new character
func CreatePersonHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCharacterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición inválido"})
			return
		}
		person := domain.Character{Nombre: req.Nombre, Genero: req.Genero, Nacimiento: req.Nacimiento}
		// Attempt to create the character in the database
		if err := db.Create(&person).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el personaje"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"person_id": person.ID,     // New character ID
			"nombre":    person.Nombre, // Name
		}).Info("Character created")
		c.JSON(http.StatusCreated, person.Serialize()) // Return the new character
	}
}

// UpdatePersonHandler overwrites the provided fields, preserving the rest
func UpdatePersonHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, ok := pathID(c, "person_id") // Parse id from path
		if !ok {
			return
		}
		var person domain.Character // Fetch character from database
		if err := db.First(&person, personID).Error; err != nil {
			// If character not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Personaje no encontrado"})
			return
		}
		var req UpdateCharacterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición inválido"})
			return
		}
		// Overwrite only the fields the request carried
		if req.Nombre != nil {
			person.Nombre = *req.Nombre
		}
		if req.Genero != nil {
			person.Genero = *req.Genero
		}
		if req.Nacimiento != nil {
			person.Nacimiento = *req.Nacimiento
		}
		// Persist the merged record
		if err := db.Save(&person).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el personaje"})
			return
		}
		c.JSON(http.StatusOK, person.Serialize()) // Return the updated character
	}
}

// DeletePersonHandler removes a character; favorites referencing it go with
// it via the cascade constraint
func DeletePersonHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, ok := pathID(c, "person_id") // Parse id from path
		if !ok {
			return
		}
		var person domain.Character // Fetch character from database
		if err := db.First(&person, personID).Error; err != nil {
			// If character not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Personaje no encontrado"})
			return
		}
		// Delete the character; the store cascades to referencing favorites
		if err := db.Delete(&person).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el personaje"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"person_id": person.ID, // Deleted character ID
		}).Info("Character deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Personaje eliminado"}) // Return confirmation
	}
}
