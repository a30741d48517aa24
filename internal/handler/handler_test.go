package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gameshelf/backend/internal/auth"
	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/database"
	"gameshelf/backend/internal/search"
	"gameshelf/backend/internal/store"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "open-sesame"

// newTestRouter wires the handlers to a fresh catalog with the same route
// layout the server entrypoint uses.
func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	config.AppConfig = &config.Config{
		JWTSecret:         "handler-test-secret",
		AdminPasswordHash: string(hash),
	}

	db, err := database.Connect(database.DriverSQLite, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)

	st := store.New(db)
	Setup(st, search.New(st))

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/games", GetGames)
		apiV1.GET("/games/:id", GetGameByID)
		apiV1.GET("/filters", GetFilterOptions)
		apiV1.GET("/developers", GetDevelopers)
		apiV1.GET("/genres", GetGenres)
		apiV1.GET("/platforms", GetPlatforms)
		apiV1.GET("/tags", GetTags)

		apiV1.POST("/admin/login", AdminLogin)

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.RequireAdmin())
		{
			adminRoutes.POST("/games", CreateGame)
			adminRoutes.POST("/games/import", ImportGame)
			adminRoutes.PUT("/games/:id", UpdateGame)
			adminRoutes.DELETE("/games/:id", DeleteGame)
			adminRoutes.POST("/games/:id/platforms/:platformID", AttachPlatform)
			adminRoutes.DELETE("/games/:id/platforms/:platformID", DetachPlatform)
			adminRoutes.POST("/games/:id/tags/:tagID", AttachTag)
			adminRoutes.DELETE("/games/:id/tags/:tagID", DetachTag)
			adminRoutes.DELETE("/developers/:id", DeleteDeveloper)
			adminRoutes.DELETE("/genres/:id", DeleteGenre)
		}
	}
	return router, st
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func loginAsAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/admin/login", "", LoginInput{Password: testAdminPassword})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	body := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func seedTestCatalog(t *testing.T, st *store.Store) {
	t.Helper()

	_, err := st.SeedCatalog(context.Background(), []store.GameImport{
		{
			Title:          "Blade of the Crimson Court",
			ReleaseDate:    time.Date(2021, 4, 9, 0, 0, 0, 0, time.UTC),
			Developer:      "Kagero Works",
			Country:        "Japan",
			Genre:          "Action RPG",
			Platforms:      []string{"PC"},
			GenreTags:      []string{"Souls-like"},
			PreferenceTags: []string{"Challenging"},
		},
		{
			Title:          "Harvest Lane",
			ReleaseDate:    time.Date(2020, 8, 14, 0, 0, 0, 0, time.UTC),
			Developer:      "Komorebi Studio",
			Country:        "Japan",
			Genre:          "Simulation",
			Platforms:      []string{"Nintendo Switch"},
			PreferenceTags: []string{"Relaxing"},
		},
		{
			Title:          "Static Frontier",
			ReleaseDate:    time.Date(2022, 11, 3, 0, 0, 0, 0, time.UTC),
			Developer:      "Redline Interactive",
			Country:        "United States",
			Genre:          "Action RPG",
			Platforms:      []string{"PC"},
			PreferenceTags: []string{"Multiplayer"},
		},
	})
	require.NoError(t, err)
}

func TestSearchEndpointSortsAndPaginates(t *testing.T) {
	router, st := newTestRouter(t)
	seedTestCatalog(t, st)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/games?sort=release_date_asc&limit=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decodeBody[PaginatedGameResponse](t, rec)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Harvest Lane", page.Data[0].Title)
	assert.Equal(t, "2020-08-14", page.Data[0].ReleaseDate)
	assert.Equal(t, "Blade of the Crimson Court", page.Data[1].Title)
	assert.EqualValues(t, 3, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.Equal(t, 1, page.Meta.CurrentPage)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/games?sort=release_date_asc&limit=2&page=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = decodeBody[PaginatedGameResponse](t, rec)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Static Frontier", page.Data[0].Title)
}

func TestSearchEndpointFilters(t *testing.T) {
	router, st := newTestRouter(t)
	seedTestCatalog(t, st)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/games?genre=Simulation", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[PaginatedGameResponse](t, rec)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Harvest Lane", page.Data[0].Title)
	assert.Equal(t, "Komorebi Studio", page.Data[0].Developer.Name)

	// Repeatable and comma-separated values both widen the same field.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/games?genre=Simulation,Action%20RPG&country=Japan", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = decodeBody[PaginatedGameResponse](t, rec)
	assert.Len(t, page.Data, 2)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/games?preference=Unheard-of", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = decodeBody[PaginatedGameResponse](t, rec)
	assert.Empty(t, page.Data)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/games?sort=alphabetical", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGameDetailEndpoint(t *testing.T) {
	router, st := newTestRouter(t)
	seedTestCatalog(t, st)

	games, err := st.SearchGames(context.Background(), store.GameFilter{Genres: []string{"Simulation"}})
	require.NoError(t, err)
	require.Len(t, games, 1)

	rec := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/games/%d", games[0].ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	detail := decodeBody[GameResponse](t, rec)
	assert.Equal(t, "Harvest Lane", detail.Title)
	assert.Equal(t, "Komorebi Studio", detail.Developer.Name)
	assert.Equal(t, "Simulation", detail.Genre.Name)
	require.Len(t, detail.Platforms, 1)
	assert.Equal(t, []string{"Relaxing"}, detail.PreferenceTags)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/games/999999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCatalogListingEndpoints(t *testing.T) {
	router, st := newTestRouter(t)
	seedTestCatalog(t, st)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/developers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	developers := decodeBody[[]DeveloperResponse](t, rec)
	require.Len(t, developers, 3)
	assert.Equal(t, "Kagero Works", developers[0].Name)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/tags?category=preference", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tags := decodeBody[[]TagResponse](t, rec)
	for _, tag := range tags {
		assert.Equal(t, "preference", tag.Category)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/v1/tags?category=mood", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/filters", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	opts := decodeBody[FilterOptionsResponse](t, rec)
	assert.Equal(t, []string{"Action RPG", "Simulation"}, opts.Genres)
	assert.Equal(t, []string{"Japan", "United States"}, opts.Countries)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/admin/games", "", GameInput{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/admin/games", "not-a-jwt", GameInput{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A valid signature without the admin role is authenticated but not
	// authorized.
	claims := gojwt.MapClaims{
		"sub":  "viewer",
		"role": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	viewerToken, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/admin/games", viewerToken, GameInput{})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/admin/login", "", LoginInput{Password: "guess"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminCreateUpdateDeleteGame(t *testing.T) {
	router, st := newTestRouter(t)
	token := loginAsAdmin(t, router)
	ctx := context.Background()

	developer, err := st.GetOrCreateDeveloper(ctx, "Supergiant Games", "United States")
	require.NoError(t, err)
	genre, err := st.GetOrCreateGenre(ctx, "Roguelike")
	require.NoError(t, err)
	pc, err := st.GetOrCreatePlatform(ctx, "PC")
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/admin/games", token, GameInput{
		Title:       "Hades",
		ReleaseDate: "2020-09-17",
		DeveloperID: developer.ID,
		GenreID:     genre.ID,
		PlatformIDs: []uint{pc.ID},
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	created := decodeBody[GameResponse](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Hades", created.Title)
	assert.Equal(t, "2020-09-17", created.ReleaseDate)

	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/v1/admin/games/%d", created.ID), token, GameInput{
		Title:       "Hades II",
		ReleaseDate: "2024-05-06",
		DeveloperID: developer.ID,
		GenreID:     genre.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[GameResponse](t, rec)
	assert.Equal(t, "Hades II", updated.Title)
	assert.Empty(t, updated.Platforms, "full update replaces the association set")

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/games/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/games/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminCreateGameRejectsBadDate(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/admin/games", token, GameInput{
		Title:       "Calendar Trouble",
		ReleaseDate: "17/09/2020",
		DeveloperID: 1,
		GenreID:     1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestAdminAttachDetachPlatform(t *testing.T) {
	router, st := newTestRouter(t)
	seedTestCatalog(t, st)
	token := loginAsAdmin(t, router)
	ctx := context.Background()

	games, err := st.SearchGames(ctx, store.GameFilter{Genres: []string{"Simulation"}})
	require.NoError(t, err)
	require.Len(t, games, 1)
	gameID := games[0].ID

	platform, err := st.GetOrCreatePlatform(ctx, "Steam Deck")
	require.NoError(t, err)

	path := fmt.Sprintf("/api/v1/admin/games/%d/platforms/%d", gameID, platform.ID)

	rec := doRequest(t, router, http.MethodPost, path, token, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The pair is already linked, so the repeat is a conflict.
	rec = doRequest(t, router, http.MethodPost, path, token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteDeveloperCascade(t *testing.T) {
	router, st := newTestRouter(t)
	seedTestCatalog(t, st)
	token := loginAsAdmin(t, router)

	developers, err := st.ListDevelopers(context.Background())
	require.NoError(t, err)
	var kagero uint
	for _, developer := range developers {
		if developer.Name == "Kagero Works" {
			kagero = developer.ID
		}
	}
	require.NotZero(t, kagero)

	path := fmt.Sprintf("/api/v1/admin/developers/%d", kagero)

	rec := doRequest(t, router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The developer's game went with it.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/games", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[PaginatedGameResponse](t, rec)
	assert.Len(t, page.Data, 2)
	for _, game := range page.Data {
		assert.NotEqual(t, "Blade of the Crimson Court", game.Title)
	}
}

func TestAdminImportGameEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	token := loginAsAdmin(t, router)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/admin/games/import", token, GameImportInput{
		Title:          "Hollow Knight",
		ReleaseDate:    "2017-02-24",
		Developer:      "Team Cherry",
		Country:        "Australia",
		Genre:          "Metroidvania",
		Platforms:      []string{"PC", "Nintendo Switch"},
		GenreTags:      []string{"Platformer"},
		PreferenceTags: []string{"Exploration"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	created := decodeBody[GameResponse](t, rec)
	assert.Equal(t, "Team Cherry", created.Developer.Name)
	assert.Len(t, created.Platforms, 2)
	assert.Equal(t, []string{"Platformer"}, created.GenreTags)
	assert.Equal(t, []string{"Exploration"}, created.PreferenceTags)
}
