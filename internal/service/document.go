package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mithaqhq/mithaq/internal/model"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/storage"
	"github.com/mithaqhq/mithaq/internal/validation"
)

// DocumentService stores user uploads (contract drafts, venue quotes) in
// S3-compatible storage and tracks their metadata.
type DocumentService struct {
	repo    repository.DocumentRepository
	storage storage.Storage
}

func NewDocumentService(repo repository.DocumentRepository, store storage.Storage) *DocumentService {
	return &DocumentService{repo: repo, storage: store}
}

func (s *DocumentService) Upload(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (*model.Document, error) {
	err := validation.ValidateFile(header, validation.DocumentConstraints)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(header.Filename)
	ext := strings.ToLower(filepath.Ext(name))
	path := fmt.Sprintf("documents/%s/%s%s", userID, uuid.New().String(), ext)

	contentType := header.Header.Get("Content-Type")
	err = s.storage.Save(ctx, path, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &model.Document{
		UserID:      userID,
		Name:        name,
		Path:        path,
		ContentType: contentType,
		Size:        header.Size,
	}

	err = s.repo.Create(doc)
	if err != nil {
		// Orphaned blob cleanup; metadata row is the source of truth
		delErr := s.storage.Delete(ctx, path)
		if delErr != nil {
			slog.Error("failed to delete orphaned document blob", "error", delErr, "path", path)
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return doc, nil
}

// Documents lists the user's uploads with presigned download URLs.
func (s *DocumentService) Documents(ctx context.Context, userID string) ([]model.Document, error) {
	docs, err := s.repo.AllUser(userID)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		url, err := s.storage.PresignURL(ctx, docs[i].Path)
		if err != nil {
			slog.Error("failed to presign document url", "error", err, "document_id", docs[i].ID)
			continue
		}
		docs[i].URL = url
	}

	return docs, nil
}

func (s *DocumentService) Delete(ctx context.Context, userID, docID string) error {
	doc, err := s.repo.ByID(userID, docID)
	if err != nil {
		return err
	}

	err = s.repo.Delete(userID, docID)
	if err != nil {
		return err
	}

	err = s.storage.Delete(ctx, doc.Path)
	if err != nil {
		slog.Error("failed to delete document blob", "error", err, "path", doc.Path)
	}

	return nil
}
