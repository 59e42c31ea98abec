// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shayar/PhdMatcher-FE/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrProfessorNotFound   = errors.New("professor not found")
	ErrInstitutionNotFound = errors.New("institution not found")
)

type account struct {
	user         models.User
	passwordHash []byte
}

// Directory is the in-memory data set served by the development backend:
// accounts, professors and their institutions.
type Directory struct {
	mu           sync.RWMutex
	nextUserID   int64
	accounts     map[int64]*account
	emails       map[string]int64
	professors   []models.Professor
	institutions map[string]models.Institution
	now          func() time.Time
}

func NewDirectory() *Directory {
	return &Directory{
		nextUserID:   1,
		accounts:     make(map[int64]*account),
		emails:       make(map[string]int64),
		institutions: make(map[string]models.Institution),
		now:          time.Now,
	}
}

// CreateUser registers a new active account. Emails are compared case
// insensitively.
func (d *Directory) CreateUser(email, password, fullName string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	key := strings.ToLower(strings.TrimSpace(email))

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.emails[key]; ok {
		return models.User{}, ErrEmailTaken
	}

	now := d.now().UTC()
	user := models.User{
		ID:        d.nextUserID,
		Email:     strings.TrimSpace(email),
		FullName:  fullName,
		IsActive:  true,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	d.nextUserID++
	d.accounts[user.ID] = &account{user: user, passwordHash: hash}
	d.emails[key] = user.ID

	return user, nil
}

// Authenticate returns the account matching email and password.
func (d *Directory) Authenticate(email, password string) (models.User, error) {
	d.mu.RLock()
	id, ok := d.emails[strings.ToLower(strings.TrimSpace(email))]
	var acc account
	if ok {
		acc = *d.accounts[id]
	}
	d.mu.RUnlock()

	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

func (d *Directory) User(id int64) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	acc, ok := d.accounts[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return acc.user, nil
}

// UpdateUser applies the non-nil fields of update.
func (d *Directory) UpdateUser(id int64, update models.ProfileUpdate) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	acc, ok := d.accounts[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	u := &acc.user
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.EducationLevel != nil {
		u.EducationLevel = *update.EducationLevel
	}
	if update.FieldOfStudy != nil {
		u.FieldOfStudy = *update.FieldOfStudy
	}
	if update.ResearchInterests != nil {
		u.ResearchInterests = slices.Clone(update.ResearchInterests)
	}
	if update.PreferredLocations != nil {
		u.PreferredLocations = slices.Clone(update.PreferredLocations)
	}
	if update.TargetUniversities != nil {
		u.TargetUniversities = slices.Clone(update.TargetUniversities)
	}
	now := d.now().UTC()
	u.UpdatedAt = &now

	return *u, nil
}

// SetResume records where the user's resume was stored.
func (d *Directory) SetResume(id int64, path string) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	acc, ok := d.accounts[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	acc.user.ResumeFilePath = path
	return acc.user, nil
}

// Deactivate disables the account so its tokens stop working.
func (d *Directory) Deactivate(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	acc, ok := d.accounts[id]
	if !ok {
		return ErrUserNotFound
	}
	acc.user.IsActive = false
	return nil
}

// AddInstitution registers or replaces an institution.
func (d *Directory) AddInstitution(inst models.Institution) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.institutions[inst.OpenAlexID] = inst
}

// AddProfessor appends a professor to the catalogue.
func (d *Directory) AddProfessor(p models.Professor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.professors = append(d.professors, p)
}

func (d *Directory) Professor(id string) (models.Professor, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.professors {
		if p.OpenAlexID == id {
			return p, nil
		}
	}
	return models.Professor{}, ErrProfessorNotFound
}

// Professors returns the professors accepted by keep, in catalogue order.
func (d *Directory) Professors(keep func(models.Professor, models.Institution) bool) []models.Professor {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Professor, 0, len(d.professors))
	for _, p := range d.professors {
		if keep == nil || keep(p, d.institutions[p.InstitutionID]) {
			out = append(out, p)
		}
	}
	return out
}
