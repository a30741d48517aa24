package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AttachPlatform godoc
// @Summary      Attach a platform to a game
// @Description  Links an existing platform to an existing game. Attaching the same pair twice fails.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  int  true  "Game ID"
// @Param        platformID path  int  true  "Platform ID"
// @Success      201  {object}  map[string]string "{"message": "Platform attached"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Unknown game or platform, or already attached"
// @Router       /admin/games/{id}/platforms/{platformID} [post]
func AttachPlatform(c *gin.Context) {
	gameID, _ := strconv.Atoi(c.Param("id"))
	platformID, _ := strconv.Atoi(c.Param("platformID"))

	if err := dataStore.AttachPlatform(c.Request.Context(), uint(gameID), uint(platformID)); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Platform attached"})
}

// DetachPlatform godoc
// @Summary      Detach a platform from a game
// @Description  Removes the link between a game and a platform.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  int  true  "Game ID"
// @Param        platformID path  int  true  "Platform ID"
// @Success      200  {object}  map[string]string "{"message": "Platform detached"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Association not found"
// @Router       /admin/games/{id}/platforms/{platformID} [delete]
func DetachPlatform(c *gin.Context) {
	gameID, _ := strconv.Atoi(c.Param("id"))
	platformID, _ := strconv.Atoi(c.Param("platformID"))

	if err := dataStore.DetachPlatform(c.Request.Context(), uint(gameID), uint(platformID)); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Platform detached"})
}

// AttachTag godoc
// @Summary      Attach a tag to a game
// @Description  Links an existing tag to an existing game. Attaching the same pair twice fails.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "Game ID"
// @Param        tagID path  int  true  "Tag ID"
// @Success      201  {object}  map[string]string "{"message": "Tag attached"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Unknown game or tag, or already attached"
// @Router       /admin/games/{id}/tags/{tagID} [post]
func AttachTag(c *gin.Context) {
	gameID, _ := strconv.Atoi(c.Param("id"))
	tagID, _ := strconv.Atoi(c.Param("tagID"))

	if err := dataStore.AttachTag(c.Request.Context(), uint(gameID), uint(tagID)); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tag attached"})
}

// DetachTag godoc
// @Summary      Detach a tag from a game
// @Description  Removes the link between a game and a tag.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "Game ID"
// @Param        tagID path  int  true  "Tag ID"
// @Success      200  {object}  map[string]string "{"message": "Tag detached"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Association not found"
// @Router       /admin/games/{id}/tags/{tagID} [delete]
func DetachTag(c *gin.Context) {
	gameID, _ := strconv.Atoi(c.Param("id"))
	tagID, _ := strconv.Atoi(c.Param("tagID"))

	if err := dataStore.DetachTag(c.Request.Context(), uint(gameID), uint(tagID)); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag detached"})
}
