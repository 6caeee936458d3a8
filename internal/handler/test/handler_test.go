package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"petads/internal/config"
	handlers "petads/internal/handler"
)

func createTestHandler(authService *MockAuthService, adService *MockAdService) *handlers.Handlers {
	cfg := &config.Config{
		ServerPort:    5000,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService: authService,
		AdService:   adService,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

// multipartAdForm builds a multipart body for POST /ads
func multipartAdForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		err := writer.WriteField(key, value)
		assert.NoError(t, err)
	}

	if withImage {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="rex.jpg"`)
		header.Set("Content-Type", "image/jpeg")

		part, err := writer.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write([]byte("fake-jpeg-bytes"))
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
