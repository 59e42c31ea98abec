// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/mock"
	"github.com/shayar/PhdMatcher-FE/internal/validators"
	"github.com/shayar/PhdMatcher-FE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, name string, size int) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, make([]byte, size), 0o600))
	return p
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	svc := NewUserService(api, logger.Nop())

	field := "Computer Science"
	update := models.ProfileUpdate{FieldOfStudy: &field}
	api.EXPECT().Put(gomock.Any(), PathCurrentUser, update, gomock.Any()).
		DoAndReturn(returnJSON(models.User{ID: 1, FieldOfStudy: field}))

	user, err := svc.UpdateProfile(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, field, user.FieldOfStudy)
}

func TestUserService_UpdateProfileEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUserService(mock.NewMockAPI(ctrl), logger.Nop())

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{})
	assert.ErrorIs(t, err, adapter.ErrValidation)
}

func TestUserService_UploadResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPI(ctrl)
	svc := NewUserService(api, logger.Nop())
	path := writeFile(t, "cv.pdf", 2048)

	api.EXPECT().UploadFile(gomock.Any(), PathUploadResume, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f adapter.UploadFile, onProgress adapter.ProgressFunc, out any) error {
			assert.Equal(t, "cv.pdf", f.Name)
			assert.Equal(t, int64(2048), f.Size)
			n, err := io.Copy(io.Discard, f.Reader)
			require.NoError(t, err)
			assert.Equal(t, int64(2048), n)
			onProgress(100)
			*out.(*models.UploadAck) = models.UploadAck{Message: "Resume uploaded successfully", Filename: "cv.pdf"}
			return nil
		})

	var progress []int
	ack, err := svc.UploadResume(context.Background(), path, func(p int) { progress = append(progress, p) })
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", ack.Filename)
	assert.Equal(t, []int{100}, progress)
}

func TestUserService_UploadResumeRejectedBeforeNetwork(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		sentinel error
	}{
		{"no path", func(*testing.T) string { return "" }, validators.ErrNoFile},
		{"wrong type", func(t *testing.T) string { return writeFile(t, "photo.png", 10) }, validators.ErrUnsupportedFile},
		{"too large", func(t *testing.T) string {
			return writeFile(t, "cv.docx", int(validators.MaxResumeSize)+1)
		}, validators.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewUserService(mock.NewMockAPI(ctrl), logger.Nop())

			_, err := svc.UploadResume(context.Background(), tt.path(t), nil)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, adapter.ErrValidation)
		})
	}
}

func TestUserService_UploadResumeMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUserService(mock.NewMockAPI(ctrl), logger.Nop())

	_, err := svc.UploadResume(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"), nil)
	assert.ErrorIs(t, err, adapter.ErrValidation)
}
