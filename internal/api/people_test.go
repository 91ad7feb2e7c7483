package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePerson(t *testing.T) {
	r, _ := setupServer(t)

	w := performRequest(t, r, http.MethodPost, "/people",
		gin.H{"nombre": "Luke Skywalker", "genero": "masculino", "nacimiento": "19BBY"})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Luke Skywalker", body["nombre"], "name does not match")
	assert.Equal(t, "masculino", body["genero"], "gender does not match")
	assert.NotZero(t, body["id"], "id is not set")
}

func TestListPeople(t *testing.T) {
	r, db := setupServer(t)
	seedCharacter(t, db, "Luke Skywalker")
	seedCharacter(t, db, "Leia Organa")

	w := performRequest(t, r, http.MethodGet, "/people", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeListBody(t, w), 2, "both characters should be listed")
}

func TestGetPerson(t *testing.T) {
	t.Run("existing character is returned", func(t *testing.T) {
		r, db := setupServer(t)
		person := seedCharacter(t, db, "Luke Skywalker")

		w := performRequest(t, r, http.MethodGet, fmt.Sprintf("/people/%d", person.ID), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Luke Skywalker", decodeBody(t, w)["nombre"], "name does not match")
	})

	t.Run("unknown character is not found", func(t *testing.T) {
		r, _ := setupServer(t)

		w := performRequest(t, r, http.MethodGet, "/people/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Personaje no encontrado", decodeBody(t, w)["error"], "error does not match")
	})
}

func TestUpdatePerson(t *testing.T) {
	t.Run("omitted fields keep their prior values", func(t *testing.T) {
		r, db := setupServer(t)
		person := seedCharacter(t, db, "Luke Skywalker")

		w := performRequest(t, r, http.MethodPut, fmt.Sprintf("/people/%d", person.ID),
			gin.H{"genero": "otro"})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Luke Skywalker", body["nombre"], "name should be unchanged")
		assert.Equal(t, "otro", body["genero"], "gender should be overwritten")
		assert.Equal(t, "19BBY", body["nacimiento"], "birth date should be unchanged")
	})

	t.Run("unknown character is not found", func(t *testing.T) {
		r, _ := setupServer(t)

		w := performRequest(t, r, http.MethodPut, "/people/999", gin.H{"genero": "otro"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeletePerson(t *testing.T) {
	t.Run("existing character is removed", func(t *testing.T) {
		r, db := setupServer(t)
		person := seedCharacter(t, db, "Luke Skywalker")

		w := performRequest(t, r, http.MethodDelete, fmt.Sprintf("/people/%d", person.ID), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Personaje eliminado", decodeBody(t, w)["message"], "message does not match")

		followup := performRequest(t, r, http.MethodGet, fmt.Sprintf("/people/%d", person.ID), nil)
		require.Equal(t, http.StatusNotFound, followup.Code, "deleted character should be gone")
	})

	t.Run("unknown character is not found", func(t *testing.T) {
		r, _ := setupServer(t)

		w := performRequest(t, r, http.MethodDelete, "/people/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
