package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/search"
	"gameshelf/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format for release dates.
const dateLayout = "2006-01-02"

// region --- DTOs ---

type GameInput struct {
	Title       string   `json:"title" binding:"required"`
	ReleaseDate string   `json:"release_date" binding:"required" example:"2020-01-01"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url"`
	DeveloperID uint     `json:"developer_id" binding:"required"`
	GenreID     uint     `json:"genre_id" binding:"required"`
	PlatformIDs []uint   `json:"platform_ids"` // IDs of the platforms to associate with the game
	TagIDs      []uint   `json:"tag_ids"`      // IDs of the tags to associate with the game
}

func (in GameInput) toParams() (store.GameParams, bool) {
	releaseDate, err := time.Parse(dateLayout, in.ReleaseDate)
	if err != nil {
		return store.GameParams{}, false
	}
	return store.GameParams{
		Title:       in.Title,
		ReleaseDate: releaseDate,
		Description: in.Description,
		Rating:      in.Rating,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		DeveloperID: in.DeveloperID,
		GenreID:     in.GenreID,
		PlatformIDs: in.PlatformIDs,
		TagIDs:      in.TagIDs,
	}, true
}

// GameImportInput references related rows by name instead of ID; missing
// developers, genres, platforms, and tags are created during the import.
type GameImportInput struct {
	Title          string   `json:"title" binding:"required"`
	ReleaseDate    string   `json:"release_date" binding:"required" example:"2020-01-01"`
	Description    string   `json:"description"`
	Rating         *float64 `json:"rating"`
	Price          *float64 `json:"price"`
	ImageURL       string   `json:"image_url"`
	Developer      string   `json:"developer" binding:"required"`
	Country        string   `json:"country" binding:"required"`
	Genre          string   `json:"genre" binding:"required"`
	Platforms      []string `json:"platforms"`
	GenreTags      []string `json:"genre_tags"`
	PreferenceTags []string `json:"preference_tags"`
}

type GameResponse struct {
	ID             uint               `json:"id"`
	Title          string             `json:"title"`
	ReleaseDate    string             `json:"release_date" example:"2020-01-01"`
	Description    string             `json:"description"`
	Rating         *float64           `json:"rating,omitempty"`
	Price          *float64           `json:"price,omitempty"`
	ImageURL       string             `json:"image_url"`
	Developer      DeveloperResponse  `json:"developer"`
	Genre          GenreResponse      `json:"genre"`
	Platforms      []PlatformResponse `json:"platforms"`
	GenreTags      []string           `json:"genre_tags"`
	PreferenceTags []string           `json:"preference_tags"`
}

func newGameResponse(game models.Game) GameResponse {
	platforms := make([]PlatformResponse, 0, len(game.Platforms))
	for _, platform := range game.Platforms {
		if platform != nil {
			platforms = append(platforms, newPlatformResponse(*platform))
		}
	}

	return GameResponse{
		ID:             game.ID,
		Title:          game.Title,
		ReleaseDate:    game.ReleaseDate.Format(dateLayout),
		Description:    game.Description,
		Rating:         game.Rating,
		Price:          game.Price,
		ImageURL:       game.ImageURL,
		Developer:      newDeveloperResponse(game.Developer),
		Genre:          newGenreResponse(game.Genre),
		Platforms:      platforms,
		GenreTags:      game.TagsByCategory(models.TagCategoryGenre),
		PreferenceTags: game.TagsByCategory(models.TagCategoryPreference),
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game referencing an existing developer, genre, platforms, and tags by ID.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Unknown reference or duplicate association"
// @Router       /admin/games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, ok := input.toParams()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "release_date must be formatted as YYYY-MM-DD"})
		return
	}

	game, err := dataStore.CreateGame(c.Request.Context(), params)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// ImportGame godoc
// @Summary      Import a game by names
// @Description  Creates a game resolving developer, genre, platforms, and tags by name, creating them as needed.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameImportInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/games/import [post]
func ImportGame(c *gin.Context) {
	var input GameImportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	releaseDate, err := time.Parse(dateLayout, input.ReleaseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "release_date must be formatted as YYYY-MM-DD"})
		return
	}

	game, err := dataStore.ImportGame(c.Request.Context(), store.GameImport{
		Title:          input.Title,
		ReleaseDate:    releaseDate,
		Description:    input.Description,
		Rating:         input.Rating,
		Price:          input.Price,
		ImageURL:       input.ImageURL,
		Developer:      input.Developer,
		Country:        input.Country,
		Genre:          input.Genre,
		Platforms:      input.Platforms,
		GenreTags:      input.GenreTags,
		PreferenceTags: input.PreferenceTags,
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Overwrites a game's fields and replaces its platform and tag associations.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      409   {object}  ErrorResponse "Unknown reference"
// @Router       /admin/games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, ok := input.toParams()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "release_date must be formatted as YYYY-MM-DD"})
		return
	}

	game, err := dataStore.UpdateGame(c.Request.Context(), uint(id), params)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game; its platform and tag associations go with it.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := dataStore.DeleteGame(c.Request.Context(), uint(id)); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion

// region --- Public Handlers ---

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves one game with its developer, genre, platforms, and tags.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	game, err := dataStore.GetGame(c.Request.Context(), uint(id))
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// GetGames godoc
// @Summary      Search games
// @Description  Retrieves games filtered by tags, preferences, genres, country, and platform, ordered by release date.
// @Tags         games
// @Produce      json
// @Param        tag        query  string  false  "Tag name, repeatable or comma-separated"
// @Param        preference query  string  false  "Preference tag name, repeatable or comma-separated"
// @Param        genre      query  string  false  "Genre name, repeatable or comma-separated"
// @Param        country    query  string  false  "Developer country"
// @Param        platform   query  string  false  "Platform name"
// @Param        sort       query  string  false  "release_date_desc (default) or release_date_asc"
// @Param        page       query  int     false  "Page number" default(1)
// @Param        limit      query  int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse "Unknown sort order"
// @Router       /games [get]
func GetGames(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	games, err := searchSvc.Search(c.Request.Context(), search.Query{
		Tags:        queryList(c, "tag"),
		Preferences: queryList(c, "preference"),
		Genres:      queryList(c, "genre"),
		Country:     c.Query("country"),
		Platform:    c.Query("platform"),
		Sort:        c.Query("sort"),
	})
	if err != nil {
		writeStoreError(c, err)
		return
	}

	response := make([]GameResponse, 0, limit)
	for _, game := range pageSlice(games, page, limit) {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, int64(len(games)), page, limit))
}

// queryList collects a repeatable query parameter, splitting each occurrence
// on commas.
func queryList(c *gin.Context, key string) []string {
	var values []string
	for _, raw := range c.QueryArray(key) {
		values = append(values, splitCommaSeparated(raw)...)
	}
	return values
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// endregion
