package api

import (
	"errors"                       // Error inspection
	"net/http"                     // HTTP status codes
	"starwars_api/internal/domain" // Importing domain models
	"strconv"                      // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AddFavoritePlanetHandler marks a planet as a favorite of a user; both ids
// travel in the path
func AddFavoritePlanetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id") // Parse user id from path
		if !ok {
			return
		}
		planetID, ok := pathID(c, "planet_id") // Parse planet id from path
		if !ok {
			return
		}
		addFavorite(c, db, userID, domain.FavoriteTarget{Kind: domain.TargetPlanet, ID: planetID})
	}
}

// AddFavoritePersonHandler marks a character as a favorite of a user; the
// user id travels as a query parameter
func AddFavoritePersonHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		peopleID, ok := pathID(c, "people_id") // Parse character id from path
		if !ok {
			return
		}
		userID, ok := queryUserID(c) // Parse user id from query
		if !ok {
			return
		}
		addFavorite(c, db, userID, domain.FavoriteTarget{Kind: domain.TargetCharacter, ID: peopleID})
	}
}

// RemoveFavoritePlanetHandler removes a (user, planet) favorite pair
func RemoveFavoritePlanetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		planetID, ok := pathID(c, "planet_id") // Parse planet id from path
		if !ok {
			return
		}
		userID, ok := queryUserID(c) // Parse user id from query
		if !ok {
			return
		}
		removeFavorite(c, db, userID, domain.FavoriteTarget{Kind: domain.TargetPlanet, ID: planetID})
	}
}

// RemoveFavoritePersonHandler removes a (user, character) favorite pair
func RemoveFavoritePersonHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		peopleID, ok := pathID(c, "people_id") // Parse character id from path
		if !ok {
			return
		}
		userID, ok := queryUserID(c) // Parse user id from query
		if !ok {
			return
		}
		removeFavorite(c, db, userID, domain.FavoriteTarget{Kind: domain.TargetCharacter, ID: peopleID})
	}
}

// addFavorite inserts a favorite after checking the target and the user
// exist. Repeating an existing pair is a no-op that reports success instead
// of erroring.
func addFavorite(c *gin.Context, db *gorm.DB, userID uint, target domain.FavoriteTarget) {
	var person domain.Character // Target character, when applicable
	var planet domain.Planet    // Target planet, when applicable
	// The target entity must exist
	switch target.Kind {
	case domain.TargetCharacter:
		if err := db.First(&person, target.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Personaje no encontrado"})
			return
		}
	case domain.TargetPlanet:
		if err := db.First(&planet, target.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Planeta no encontrado"})
			return
		}
	}
	// The owning user must exist too
	var userCount int64
	if err := db.Model(&domain.User{}).Where("id = ?", userID).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar el usuario"})
		return
	}
	if userCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	// Probe for the pair; an existing favorite makes the create idempotent
	if _, err := findFavorite(db, userID, target); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": duplicateMessage(target.Kind)})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar el favorito"})
		return
	}
	// Insert with exactly one foreign key populated
	fav := domain.NewFavorite(userID, target)
	if err := db.Create(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el favorito"})
		return
	}
	// Attach the already-loaded target so serialization can name it
	switch target.Kind {
	case domain.TargetCharacter:
		fav.Personaje = &person
	case domain.TargetPlanet:
		fav.Planeta = &planet
	}
	// Log successful creation
	logrus.WithFields(logrus.Fields{
		"user_id":     userID,            // Owning user
		"target_kind": string(target.Kind), // Target kind
		"target_id":   target.ID,         // Target id
		"favorite_id": fav.ID,            // New favorite ID
	}).Info("Favorite created")
	c.JSON(http.StatusCreated, fav.Serialize()) // Return the new favorite
}

// removeFavorite deletes the favorite matching the (user, target) pair
func removeFavorite(c *gin.Context, db *gorm.DB, userID uint, target domain.FavoriteTarget) {
	fav, err := findFavorite(db, userID, target) // Look up the pair
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// If the pair does not exist, return not found
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorito no encontrado"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar el favorito"})
		return
	}
	// Delete the favorite
	if err := db.Delete(fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el favorito"})
		return
	}
	// Log successful removal
	logrus.WithFields(logrus.Fields{
		"user_id":     userID,            // Owning user
		"target_kind": string(target.Kind), // Target kind
		"target_id":   target.ID,         // Target id
		"favorite_id": fav.ID,            // Removed favorite ID
	}).Info("Favorite removed")
	c.JSON(http.StatusOK, gin.H{"message": "Favorito eliminado"}) // Return confirmation
}

// findFavorite fetches the favorite matching the (user, target) pair,
// filtering on the column the target kind selects
func findFavorite(db *gorm.DB, userID uint, target domain.FavoriteTarget) (*domain.Favorite, error) {
	var fav domain.Favorite
	q := db.Where("usuario_id = ?", userID) // Scope to the owning user
	switch target.Kind {
	case domain.TargetCharacter:
		q = q.Where("personaje_id = ?", target.ID) // Character side
	case domain.TargetPlanet:
		q = q.Where("planeta_id = ?", target.ID) // Planet side
	}
	if err := q.First(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

// duplicateMessage picks the already-a-favorite message for a target kind
func duplicateMessage(kind domain.TargetKind) string {
	if kind == domain.TargetCharacter {
		return "Personaje ya está en favoritos"
	}
	return "Planeta ya está en favoritos"
}

// queryUserID reads the user id from the user_id query parameter, replying
// bad request when it is missing or not numeric
func queryUserID(c *gin.Context) (uint, bool) {
	raw := c.Query("user_id") // Raw query value
	v, err := strconv.Atoi(raw)
	if raw == "" || err != nil || v <= 0 {
		// If missing or invalid, return bad request
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID requerido como query param (?user_id=)"})
		return 0, false
	}
	return uint(v), true
}
