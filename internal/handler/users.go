// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/shayar/PhdMatcher-FE/internal/app"
	"github.com/shayar/PhdMatcher-FE/internal/logger"
	"github.com/shayar/PhdMatcher-FE/internal/utils"
	"github.com/shayar/PhdMatcher-FE/models"
)

const (
	// MaxResumeSize is the largest accepted resume.
	MaxResumeSize int64 = 10 * 1024 * 1024

	resumeField = "file"

	// multipart headers and boundaries on top of the file itself
	multipartOverhead int64 = 64 * 1024
)

var resumeExtensions = []string{".pdf", ".doc", ".docx"}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.userFromRequest(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.directory.UpdateUser(userID, update)
	if err != nil {
		utils.WriteDetail(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}

	log.Info().Int64("id", userID).Msg("profile updated")
	utils.WriteJSON(w, user, http.StatusOK)
}

// uploadResume streams the "file" part without buffering the whole body.
func (h *Handler) uploadResume(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxResumeSize+multipartOverhead)
	reader, err := r.MultipartReader()
	if err != nil {
		log.Debug().Err(err).Msg("not a multipart body")
		utils.WriteDetail(w, app.MsgNoFileUploaded, http.StatusBadRequest)
		return
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			utils.WriteDetail(w, app.MsgNoFileUploaded, http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Debug().Err(err).Msg("error reading multipart body")
			h.writeUploadError(w, err)
			return
		}
		if part.FormName() != resumeField {
			part.Close()
			continue
		}

		filename := filepath.Base(part.FileName())
		if !slices.Contains(resumeExtensions, strings.ToLower(filepath.Ext(filename))) {
			part.Close()
			utils.WriteDetail(w, app.MsgUnsupportedResume, http.StatusBadRequest)
			return
		}

		path, size, err := h.storeResume(userID, filename, part)
		part.Close()
		if err != nil {
			log.Info().Err(err).Str("file", filename).Msg("resume rejected")
			h.writeUploadError(w, err)
			return
		}

		if _, err = h.directory.SetResume(userID, path); err != nil {
			utils.WriteDetail(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		}

		log.Info().Int64("id", userID).Str("file", filename).Int64("size", size).Msg("resume stored")
		utils.WriteJSON(w, models.UploadAck{Message: app.MsgResumeUploaded, FilePath: path, Filename: filename}, http.StatusOK)
		return
	}
}

var errResumeTooLarge = errors.New("resume too large")

func (h *Handler) storeResume(userID int64, filename string, src io.Reader) (string, int64, error) {
	limited := io.LimitReader(src, MaxResumeSize+1)

	dst := io.Discard
	path := filepath.Join("uploads", "resumes", strconv.FormatInt(userID, 10)+"_"+filename)
	if h.resumeDir != "" {
		path = filepath.Join(h.resumeDir, strconv.FormatInt(userID, 10)+"_"+filename)
		f, err := os.Create(path)
		if err != nil {
			return "", 0, fmt.Errorf("create resume file: %w", err)
		}
		defer f.Close()
		dst = f
	}

	n, err := io.Copy(dst, limited)
	if err != nil {
		return "", n, fmt.Errorf("copy resume: %w", err)
	}
	if n > MaxResumeSize {
		if h.resumeDir != "" {
			os.Remove(path)
		}
		return "", n, errResumeTooLarge
	}
	return path, n, nil
}

func (h *Handler) writeUploadError(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, errResumeTooLarge), errors.As(err, &maxBytes):
		utils.WriteDetail(w, app.MsgResumeTooLarge, http.StatusRequestEntityTooLarge)
	default:
		utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

// userFromRequest loads the authenticated user or writes the error reply.
func (h *Handler) userFromRequest(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		unauthorized(w, app.MsgCouldNotValidateCredentials)
		return models.User{}, false
	}

	user, err := h.directory.User(userID)
	if err != nil {
		utils.WriteDetail(w, app.MsgUserNotFound, http.StatusNotFound)
		return models.User{}, false
	}
	return user, true
}
