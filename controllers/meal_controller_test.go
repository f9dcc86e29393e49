package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backend/controllers"
	"backend/models"
	"backend/routes"
	"backend/services"
	"backend/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Meal{}))

	disk, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	bus := services.NewInvalidationBus()
	hub := services.NewFeedHub()
	bus.Subscribe(hub.MealsChanged)

	meals := services.NewMealService(db)
	cache := services.NewListingCache(meals, bus)
	share := services.NewShareService(meals, disk, bus)

	return routes.SetupRouter(routes.Deps{
		Meals: controllers.NewMealController(share, cache),
		Feed:  controllers.NewFeedController(hub),
	})
}

type formField struct{ key, value string }

func shareMealRequest(t *testing.T, fields []formField, imageName string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, w.WriteField(f.key, f.value))
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/meals", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() []formField {
	return []formField{
		{"title", "Juicy Cheese Burger"},
		{"name", "John Doe"},
		{"email", "john@example.com"},
		{"summary", "A mouth-watering burger."},
		{"instructions", "Form the patty.\nFry it."},
	}
}

func TestShareMealEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, shareMealRequest(t, validFields(), "burger.jpg", []byte("jpeg")))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "juicy-cheese-burger", created["slug"])

	// the fresh meal shows up in the listing (cache was invalidated)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meals", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listing []controllers.MealSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing, 1)
	assert.Equal(t, "juicy-cheese-burger", listing[0].Slug)
	assert.Equal(t, "images/juicy-cheese-burger.jpg", listing[0].Image)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meals/juicy-cheese-burger", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var meal models.Meal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meal))
	assert.Equal(t, "John Doe", meal.Creator)
}

func TestShareMealDuplicateTitle(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, shareMealRequest(t, validFields(), "burger.jpg", []byte("jpeg")))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, shareMealRequest(t, validFields(), "burger.jpg", []byte("jpeg")))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestShareMealRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	// missing image part
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, shareMealRequest(t, validFields(), "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed email is caught at the binding already
	fields := validFields()
	fields[2] = formField{"email", "not-an-email"}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, shareMealRequest(t, fields, "burger.jpg", []byte("jpeg")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// title that slugifies to nothing
	fields = validFields()
	fields[0] = formField{"title", "!!!"}
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, shareMealRequest(t, fields, "burger.jpg", []byte("jpeg")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMealNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meals/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
