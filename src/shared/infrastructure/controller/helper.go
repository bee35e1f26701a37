package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkspaceHeaders valida los headers obligatorios del workspace de caja.
// Todo handler del terminal opera con scope (usuario, tienda); si falta o
// es inválido alguno de los dos, responde 400 y retorna ok=false.
func WorkspaceHeaders(ctx *gin.Context) (userID, storeID uuid.UUID, ok bool) {
	rawUser := ctx.GetHeader("X-User-ID")
	if rawUser == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header is required"})
		return uuid.Nil, uuid.Nil, false
	}
	rawStore := ctx.GetHeader("X-Store-ID")
	if rawStore == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Store-ID header is required"})
		return uuid.Nil, uuid.Nil, false
	}

	userID, err := uuid.Parse(rawUser)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid X-User-ID format"})
		return uuid.Nil, uuid.Nil, false
	}
	storeID, err = uuid.Parse(rawStore)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid X-Store-ID format"})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, storeID, true
}
