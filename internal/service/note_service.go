package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
)

type NoteInput struct {
	Title       string
	Description string
}

type NoteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) Create(ctx context.Context, ownerID uint, in NoteInput) (*domain.Note, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordNoteOperation(ctx, "create", outcome, time.Since(start)) }()

	in, err := normalizeNoteInput(in)
	if err != nil {
		outcome = "bad_request"
		return nil, err
	}
	note := &domain.Note{Title: in.Title, Description: in.Description, CreatedBy: ownerID}
	if err := s.repo.Create(ctx, note); err != nil {
		outcome = "error"
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, ownerID uint, req repository.PageRequest) (repository.PageResult[domain.Note], error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordNoteOperation(ctx, "list", outcome, time.Since(start)) }()

	res, err := s.repo.ListByOwnerPaged(ctx, ownerID, req)
	if err != nil {
		outcome = "error"
		return repository.PageResult[domain.Note]{}, err
	}
	return res, nil
}

// ListAll returns every note the owner has, newest first.
func (s *NoteService) ListAll(ctx context.Context, ownerID uint) ([]domain.Note, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordNoteOperation(ctx, "list_all", outcome, time.Since(start)) }()

	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		outcome = "error"
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, ownerID, id uint) (*domain.Note, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordNoteOperation(ctx, "get", outcome, time.Since(start)) }()

	note, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		outcome = noteOutcome(err)
		return nil, translateNoteErr(err)
	}
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, ownerID, id uint, in NoteInput) (*domain.Note, error) {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordNoteOperation(ctx, "update", outcome, time.Since(start)) }()

	in, err := normalizeNoteInput(in)
	if err != nil {
		outcome = "bad_request"
		return nil, err
	}
	updates := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"updated_at":  time.Now().UTC(),
	}
	if err := s.repo.UpdateForOwner(ctx, id, ownerID, updates); err != nil {
		outcome = noteOutcome(err)
		return nil, translateNoteErr(err)
	}
	note, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		outcome = noteOutcome(err)
		return nil, translateNoteErr(err)
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, id uint) error {
	start := time.Now()
	outcome := "success"
	defer func() { observability.RecordNoteOperation(ctx, "delete", outcome, time.Since(start)) }()

	if err := s.repo.DeleteForOwner(ctx, id, ownerID); err != nil {
		outcome = noteOutcome(err)
		return translateNoteErr(err)
	}
	return nil
}

func normalizeNoteInput(in NoteInput) (NoteInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Description == "" {
		return in, ValidationError(msgNoteFieldsRequired)
	}
	return in, nil
}

func translateNoteErr(err error) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return NotFoundError(msgNoteNotFound)
	}
	return err
}

func noteOutcome(err error) string {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return "not_found"
	}
	return "error"
}
