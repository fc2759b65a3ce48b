package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	require.NotEmpty(t, form.File["file"])
	return form.File["file"][0]
}

func TestS3ImageServiceUpload(t *testing.T) {
	mock := NewMockS3Service()
	service := &S3ImageService{s3Service: mock}

	fileHeader := newTestFileHeader(t, "hero.png", []byte("fake png content"))

	url, err := service.UploadImage(fileHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://test-bucket.s3.us-east-1.amazonaws.com/images/"))
	assert.True(t, mock.FileExists("images/mock_hero.png"))
}

func TestS3ImageServiceRejectsBadFormat(t *testing.T) {
	mock := NewMockS3Service()
	service := &S3ImageService{s3Service: mock}

	fileHeader := newTestFileHeader(t, "notes.txt", []byte("plain text"))

	_, err := service.UploadImage(fileHeader)
	require.Error(t, err)
	assert.False(t, mock.FileExists("images/mock_notes.txt"))
}

func TestS3ImageServiceDelete(t *testing.T) {
	mock := NewMockS3Service()
	service := &S3ImageService{s3Service: mock}

	fileHeader := newTestFileHeader(t, "hero.png", []byte("fake png content"))
	_, err := service.UploadImage(fileHeader)
	require.NoError(t, err)

	require.NoError(t, service.DeleteImage("images/mock_hero.png"))
	assert.False(t, mock.FileExists("images/mock_hero.png"))
}

func TestLocalImageServiceRoundTrip(t *testing.T) {
	service := &LocalImageService{uploadDir: t.TempDir()}

	fileHeader := newTestFileHeader(t, "hero.png", []byte("fake png content"))

	url, err := service.UploadImage(fileHeader)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))

	filename := strings.TrimPrefix(url, "/uploads/")
	assert.NoError(t, service.DeleteImage(filename))
}
