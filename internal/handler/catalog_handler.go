package handler

import (
	"net/http"
	"strconv"
	"time"

	"gameshelf/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type DeveloperResponse struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	FoundedYear *int      `json:"founded_year,omitempty"`
	Website     string    `json:"website,omitempty"`
}

func newDeveloperResponse(developer models.Developer) DeveloperResponse {
	return DeveloperResponse{
		ID:          developer.ID,
		CreatedAt:   developer.CreatedAt,
		UpdatedAt:   developer.UpdatedAt,
		Name:        developer.Name,
		Country:     developer.Country,
		FoundedYear: developer.FoundedYear,
		Website:     developer.Website,
	}
}

type GenreResponse struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

func newGenreResponse(genre models.Genre) GenreResponse {
	return GenreResponse{
		ID:          genre.ID,
		CreatedAt:   genre.CreatedAt,
		UpdatedAt:   genre.UpdatedAt,
		Name:        genre.Name,
		Description: genre.Description,
	}
}

type PlatformResponse struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	ReleaseYear  *int      `json:"release_year,omitempty"`
}

func newPlatformResponse(platform models.Platform) PlatformResponse {
	return PlatformResponse{
		ID:           platform.ID,
		CreatedAt:    platform.CreatedAt,
		UpdatedAt:    platform.UpdatedAt,
		Name:         platform.Name,
		Manufacturer: platform.Manufacturer,
		ReleaseYear:  platform.ReleaseYear,
	}
}

type TagResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
}

func newTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
		Name:      tag.Name,
		Category:  string(tag.Category),
	}
}

// FilterOptionsResponse lists the distinct values available for each search
// filter.
type FilterOptionsResponse struct {
	Genres      []string `json:"genres"`
	Preferences []string `json:"preferences"`
	Countries   []string `json:"countries"`
	Platforms   []string `json:"platforms"`
}

// endregion

// region --- Public Handlers ---

// GetDevelopers godoc
// @Summary      Get all developers
// @Description  Retrieves all developers, ordered by name.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  DeveloperResponse
// @Router       /developers [get]
func GetDevelopers(c *gin.Context) {
	developers, err := dataStore.ListDevelopers(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}

	response := make([]DeveloperResponse, 0, len(developers))
	for _, developer := range developers {
		response = append(response, newDeveloperResponse(developer))
	}
	c.JSON(http.StatusOK, response)
}

// GetGenres godoc
// @Summary      Get all genres
// @Description  Retrieves all genres, ordered by name.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  GenreResponse
// @Router       /genres [get]
func GetGenres(c *gin.Context) {
	genres, err := dataStore.ListGenres(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}

	response := make([]GenreResponse, 0, len(genres))
	for _, genre := range genres {
		response = append(response, newGenreResponse(genre))
	}
	c.JSON(http.StatusOK, response)
}

// GetPlatforms godoc
// @Summary      Get all platforms
// @Description  Retrieves all platforms, ordered by name.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  PlatformResponse
// @Router       /platforms [get]
func GetPlatforms(c *gin.Context) {
	platforms, err := dataStore.ListPlatforms(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}

	response := make([]PlatformResponse, 0, len(platforms))
	for _, platform := range platforms {
		response = append(response, newPlatformResponse(platform))
	}
	c.JSON(http.StatusOK, response)
}

// GetTags godoc
// @Summary      Get all tags
// @Description  Retrieves all tags, optionally restricted to one category.
// @Tags         catalog
// @Produce      json
// @Param        category query string false "genre or preference"
// @Success      200  {array}   TagResponse
// @Failure      400  {object}  ErrorResponse "Unknown category"
// @Router       /tags [get]
func GetTags(c *gin.Context) {
	tags, err := dataStore.ListTags(c.Request.Context(), models.TagCategory(c.Query("category")))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, newTagResponse(tag))
	}
	c.JSON(http.StatusOK, response)
}

// GetFilterOptions godoc
// @Summary      Get search filter options
// @Description  Retrieves the distinct genre, preference, country, and platform values games can be filtered by.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  FilterOptionsResponse
// @Router       /filters [get]
func GetFilterOptions(c *gin.Context) {
	opts, err := dataStore.FilterOptions(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, FilterOptionsResponse{
		Genres:      opts.Genres,
		Preferences: opts.Preferences,
		Countries:   opts.Countries,
		Platforms:   opts.Platforms,
	})
}

// endregion

// region --- Admin Handlers ---

// DeleteDeveloper godoc
// @Summary      Delete a developer
// @Description  Deletes a developer; every game published by it goes with it.
// @Tags         admin-catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Developer ID"
// @Success      200  {object}  map[string]string "{"message": "Developer deleted"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Developer not found"
// @Router       /admin/developers/{id} [delete]
func DeleteDeveloper(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := dataStore.DeleteDeveloper(c.Request.Context(), uint(id)); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Developer deleted"})
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Description  Deletes a genre; every game classified under it goes with it.
// @Tags         admin-catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Genre ID"
// @Success      200  {object}  map[string]string "{"message": "Genre deleted"}"
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Genre not found"
// @Router       /admin/genres/{id} [delete]
func DeleteGenre(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := dataStore.DeleteGenre(c.Request.Context(), uint(id)); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Genre deleted"})
}

// endregion
