package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"starwars_api/internal/domain"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Cascade constraints need foreign key enforcement switched on
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error, "failed to enable foreign keys")

	err = db.AutoMigrate(&domain.User{}, &domain.Character{}, &domain.Planet{}, &domain.Favorite{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// setupServer wires the full route surface onto a fresh test database.
func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	return SetupRouter(db), db
}

// performRequest runs one JSON request against the router and returns the recorder.
func performRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		buf = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err, "failed to build request")
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON object response body.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "failed to decode response body")
	return body
}

// decodeListBody unmarshals a JSON array response body.
func decodeListBody(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "failed to decode response body")
	return body
}

// seedUser inserts a user row directly into the store.
func seedUser(t *testing.T, db *gorm.DB, email string) domain.User {
	t.Helper()

	user := domain.User{Email: email, Password: "hashed_secret", IsActive: true}
	require.NoError(t, db.Create(&user).Error, "failed to seed user")
	return user
}

// seedCharacter inserts a character row directly into the store.
func seedCharacter(t *testing.T, db *gorm.DB, nombre string) domain.Character {
	t.Helper()

	person := domain.Character{Nombre: nombre, Genero: "masculino", Nacimiento: "19BBY"}
	require.NoError(t, db.Create(&person).Error, "failed to seed character")
	return person
}

// seedPlanet inserts a planet row directly into the store.
func seedPlanet(t *testing.T, db *gorm.DB, nombre string) domain.Planet {
	t.Helper()

	planet := domain.Planet{Nombre: nombre, Clima: "tropical", Terreno: "desierto"}
	require.NoError(t, db.Create(&planet).Error, "failed to seed planet")
	return planet
}

// countFavorites counts the favorite rows currently stored.
func countFavorites(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&domain.Favorite{}).Count(&count).Error, "failed to count favorites")
	return count
}
