package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newvision/internal/controllers"
	"newvision/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepository)
	mockRepo.On("Get").Return(map[string]string{
		"siteTitle":    "New Vision Mayyanadan",
		"contactEmail": "news@example.com",
	}, nil)

	controller := controllers.NewSettingsController(mockRepo)
	router := setupTestRouter()
	router.GET("/api/settings", controller.GetSettings)

	req := httptest.NewRequest("GET", "/api/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "New Vision Mayyanadan", data["siteTitle"])

	mockRepo.AssertExpectations(t)
}

func TestUpdateSettingsPassesSubmittedKeysOnly(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepository)
	mockRepo.On("Update", map[string]string{"contactEmail": "tips@example.com"}).
		Return(map[string]string{
			"siteTitle":    "New Vision Mayyanadan",
			"contactEmail": "tips@example.com",
		}, nil)

	controller := controllers.NewSettingsController(mockRepo)
	router := setupTestRouter()
	router.PUT("/api/settings", controller.UpdateSettings)

	body, _ := json.Marshal(map[string]string{"contactEmail": "tips@example.com"})
	req := httptest.NewRequest("PUT", "/api/settings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The response carries the merged configuration, not just the patch.
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "tips@example.com", data["contactEmail"])
	assert.Equal(t, "New Vision Mayyanadan", data["siteTitle"])

	mockRepo.AssertExpectations(t)
}

func TestUpdateSettingsRejectsInvalidJSON(t *testing.T) {
	controller := controllers.NewSettingsController(new(mocks.MockSettingsRepository))
	router := setupTestRouter()
	router.PUT("/api/settings", controller.UpdateSettings)

	req := httptest.NewRequest("PUT", "/api/settings", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChannelInfo(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepository)
	mockRepo.On("Get").Return(map[string]string{
		"siteTitle":         "New Vision Mayyanadan",
		"youtubeChannelUrl": "https://www.youtube.com/@newvisionmayyanadan",
		"youtubeChannelId":  "@newvisionmayyanadan",
	}, nil)

	controller := controllers.NewSettingsController(mockRepo)
	router := setupTestRouter()
	router.GET("/api/youtube/channel-info", controller.GetChannelInfo)

	req := httptest.NewRequest("GET", "/api/youtube/channel-info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "New Vision Mayyanadan", data["channelName"])
	assert.Equal(t, "https://www.youtube.com/@newvisionmayyanadan", data["channelUrl"])
	assert.Equal(t, "@newvisionmayyanadan", data["channelId"])

	mockRepo.AssertExpectations(t)
}
