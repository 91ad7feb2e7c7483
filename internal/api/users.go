package api

import (
	"net/http"                     // HTTP status codes
	"starwars_api/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for user creation
type CreateUserRequest struct {
	Email    string `json:"email"`    // Email, required
	Password string `json:"password"` // Password, required
}

// Request struct for user update; pointer fields distinguish "omitted" from "empty"
type UpdateUserRequest struct {
	Email    *string `json:"email"`     // New email, optional
	Password *string `json:"password"`  // New password, optional, re-hashed on change
	IsActive *bool   `json:"is_active"` // New active flag, optional
}

// ListUsersHandler returns all users with their favorites embedded
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.User // Slice to hold users
		// Load favorites with their targets so serialization can name them
		if err := db.Preload("Favoritos.Personaje").Preload("Favoritos.Planeta").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los usuarios"})
			return
		}
		resp := make([]map[string]any, 0, len(users)) // Serialized users
		for i := range users {
			resp = append(resp, users[i].Serialize()) // Serialize each user
		}
		c.JSON(http.StatusOK, resp) // Return all users
	}
}

// GetUserHandler returns a single user by id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id") // Parse id from path
		if !ok {
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Preload("Favoritos.Personaje").Preload("Favoritos.Planeta").First(&user, userID).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusOK, user.Serialize()) // Return the user
	}
}

// CreateUserHandler registers a new user with a hashed password
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son obligatorios"})
			return
		}
		// Both fields are required
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son obligatorios"})
			return
		}
		var existing domain.User // Probe for a duplicate email
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			// If the email is taken, return conflict
			c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un usuario con ese email"})
			return
		}
		// Hash the password before storing it
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la contraseña"})
			return
		}
		user := domain.User{Email: req.Email, Password: string(hash), IsActive: true}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// A concurrent insert can still trip the unique index
			c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un usuario con ese email"})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Email
		}).Info("User created")
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"msg": "Usuario creado exitosamente", "user": user.Serialize()})
	}
}

// UpdateUserHandler overwrites the provided fields, preserving the rest
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id") // Parse id from path
		if !ok {
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición inválido"})
			return
		}
		// Changing the email re-checks uniqueness against other users
		if req.Email != nil && *req.Email != user.Email {
			var count int64
			if err := db.Model(&domain.User{}).Where("email = ? AND id <> ?", *req.Email, user.ID).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar el email"})
				return
			}
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un usuario con ese email"})
				return
			}
			user.Email = *req.Email // Overwrite email
		}
		// Changing the password re-hashes it
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la contraseña"})
				return
			}
			user.Password = string(hash) // Overwrite hash
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive // Overwrite active flag
		}
		// Persist the merged record
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el usuario"})
			return
		}
		c.JSON(http.StatusOK, user.Serialize()) // Return the updated user
	}
}

// DeleteUserHandler removes a user; its favorites go with it via the
// cascade constraint
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id") // Parse id from path
		if !ok {
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		// Delete the user; the store cascades to its favorites
		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el usuario"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // Deleted user ID
		}).Info("User deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado"}) // Return confirmation
	}
}

// ListUserFavoritesHandler returns every favorite of a user, each resolved
// to its target's full record
func ListUserFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "user_id") // Parse id from path
		if !ok {
			return
		}
		var user domain.User // Listing requires the user to exist
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		var favoritos []domain.Favorite // Favorites owned by the user
		// Load each favorite's target for resolution
		if err := db.Preload("Personaje").Preload("Planeta").Where("usuario_id = ?", userID).Find(&favoritos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los favoritos"})
			return
		}
		resultado := make([]map[string]any, 0, len(favoritos)) // Resolved entries
		for i := range favoritos {
			resultado = append(resultado, favoritos[i].SerializeResolved()) // Resolve each favorite
		}
		c.JSON(http.StatusOK, resultado) // Return the list
	}
}
