// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shayar/PhdMatcher-FE/internal/adapter"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/validators"
	"github.com/shayar/PhdMatcher-FE/models"
)

type userService struct {
	api       adapter.API
	validator validators.Validator
	logger    *logger.Logger
}

func NewUserService(api adapter.API, log *logger.Logger) UserService {
	return &userService{
		api:       api,
		validator: validators.NewResumeValidator(),
		logger:    log.WithComponent("user"),
	}
}

func (u *userService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	if update.IsEmpty() {
		return models.User{}, adapter.NewValidationError("Nothing to update")
	}

	var user models.User
	if err := u.api.Put(ctx, PathCurrentUser, update, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (u *userService) UploadResume(ctx context.Context, path string, onProgress adapter.ProgressFunc) (models.UploadAck, error) {
	var (
		name string
		size int64
	)
	if path != "" {
		name = filepath.Base(path)
		info, err := os.Stat(path)
		if err != nil {
			return models.UploadAck{}, adapter.NewValidationError("Unable to read the selected file",
				adapter.FieldError{Field: validators.FieldFile, Message: "Unable to read the selected file"})
		}
		if info.IsDir() {
			return models.UploadAck{}, adapter.NewValidationError(validators.MsgNoFile,
				adapter.FieldError{Field: validators.FieldFile, Message: validators.MsgNoFile})
		}
		size = info.Size()
	}

	if err := u.validator.Validate(ctx, models.ResumeFile{Name: name, Size: size}); err != nil {
		return models.UploadAck{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.UploadAck{}, adapter.NewUnknownError("Unable to read the selected file", fmt.Errorf("open resume: %w", err))
	}
	defer f.Close()

	var ack models.UploadAck
	err = u.api.UploadFile(ctx, PathUploadResume, adapter.UploadFile{Name: name, Size: size, Reader: f}, onProgress, &ack)
	if err != nil {
		u.logger.Warn().Err(err).Str("file", name).Msg("resume upload failed")
		return models.UploadAck{}, err
	}

	u.logger.Info().Str("file", name).Int64("size", size).Msg("resume uploaded")
	return ack, nil
}
