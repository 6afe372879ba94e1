package server

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jonathan/cv-studio/internal/db"
)

// DBClient is the subset of database operations the auth services need.
// Declared here so handlers can be tested against a fake store.
type DBClient interface {
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// ResumeStore is the subset of database operations the resume handlers need.
type ResumeStore interface {
	CreateResume(ctx context.Context, ownerID uuid.UUID, title, slug string, document json.RawMessage) (*db.ResumeRecord, error)
	GetResume(ctx context.Context, ownerID, resumeID uuid.UUID) (*db.ResumeRecord, error)
	ListResumesByOwner(ctx context.Context, ownerID uuid.UUID) ([]db.ResumeRecord, error)
	UpdateResume(ctx context.Context, ownerID, resumeID uuid.UUID, patch db.ResumePatch) (*db.ResumeRecord, error)
	DeleteResume(ctx context.Context, ownerID, resumeID uuid.UUID) (bool, error)
	SetFeatured(ctx context.Context, ownerID, resumeID uuid.UUID) error
	GetPublicBySlug(ctx context.Context, slug string) (*db.ResumeRecord, error)
}

// Store combines everything the HTTP layer needs from the database.
// *db.DB satisfies it.
type Store interface {
	DBClient
	ResumeStore
}
