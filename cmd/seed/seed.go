package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/location"
	"jobvibe/internal/pkg/apperr"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	States []struct {
		Name   string   `yaml:"name"`
		Code   string   `yaml:"code"`
		Cities []string `yaml:"cities"`
	} `yaml:"states"`
	JobTitles []struct {
		Name     string `yaml:"name"`
		Category string `yaml:"category"`
	} `yaml:"job_titles"`
}

func loadSeedFile(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// seedLookups inserts the states, cities and job titles missing from the
// store.
func seedLookups(ctx context.Context, repo *location.Repository, f *seedFile) (int64, error) {
	var total int64
	for _, st := range f.States {
		n, err := repo.SeedState(ctx, st.Name, st.Code, st.Cities)
		if err != nil {
			return total, fmt.Errorf("state %s: %w", st.Name, err)
		}
		total += n
	}
	for _, jt := range f.JobTitles {
		n, err := repo.SeedJobTitle(ctx, jt.Name, jt.Category)
		if err != nil {
			return total, fmt.Errorf("job title %s: %w", jt.Name, err)
		}
		total += n
	}
	return total, nil
}

// seedAdmin creates the admin account unless the email is taken.
func seedAdmin(ctx context.Context, users auth.UserRepository, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		slog.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin")
		return false, nil
	}

	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	err = users.Create(ctx, &auth.User{
		Name:         "Administrator",
		Username:     "admin",
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		IsActive:     true,
		Status:       auth.StatusActive,
	})
	if apperr.IsUniqueViolation(err) {
		return false, nil
	}
	return err == nil, err
}
