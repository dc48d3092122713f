package handler

import (
	"strings"
	"testing"

	"usman/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type recordingReadCloser struct {
	*strings.Reader
	closed bool
}

func (r *recordingReadCloser) Close() error {
	r.closed = true

	return nil
}

func TestCloseUpload_ClosesMultipartFile(t *testing.T) {
	src := &recordingReadCloser{Reader: strings.NewReader("png bytes")}

	closeUpload(&usecase.PictureUpload{Reader: src, Filename: "avatar.png"})

	assert.True(t, src.closed)
}

func TestCloseUpload_NilPicture(t *testing.T) {
	assert.NotPanics(t, func() {
		closeUpload(nil)
	})
}

func TestCloseUpload_PlainReader(t *testing.T) {
	// Readers without a Close method, such as buffered test payloads, are
	// left alone.
	assert.NotPanics(t, func() {
		closeUpload(&usecase.PictureUpload{Reader: strings.NewReader("png bytes")})
	})
}
