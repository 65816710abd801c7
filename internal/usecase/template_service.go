package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/leadboard/internal/entity"
)

type TemplateService struct {
	Repo entity.EmailTemplateRepository
}

func NewTemplateService(repo entity.EmailTemplateRepository) *TemplateService {
	return &TemplateService{Repo: repo}
}

func (s *TemplateService) List(ctx context.Context) ([]entity.EmailTemplate, error) {
	templates, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storageFailure("Failed to load templates", err)
	}
	return templates, nil
}

func (s *TemplateService) Create(ctx context.Context, in TemplateInput) (*entity.EmailTemplate, error) {
	if err := checkTemplate(&in); err != nil {
		return nil, err
	}
	t, err := s.Repo.Create(ctx, in.Title, in.Content)
	if err != nil {
		return nil, storageFailure("Failed to create template", err)
	}
	return t, nil
}

func (s *TemplateService) Update(ctx context.Context, id int64, in TemplateInput) (*entity.EmailTemplate, error) {
	if err := checkTemplate(&in); err != nil {
		return nil, err
	}
	t, err := s.Repo.Update(ctx, id, in.Title, in.Content)
	if err != nil {
		return nil, templateError(err, "Failed to update template")
	}
	return t, nil
}

func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return templateError(err, "Failed to delete template")
	}
	return nil
}

func checkTemplate(in *TemplateInput) error {
	in.Title = strings.TrimSpace(in.Title)
	blankContent := strings.TrimSpace(in.Content) == ""
	if blankContent || len(validateStruct(*in)) > 0 {
		return invalidInput("Title and content are required")
	}
	return nil
}

func templateError(err error, failureMsg string) error {
	if errors.Is(err, entity.ErrTemplateNotFound) {
		return notFound("Template not found")
	}
	return storageFailure(failureMsg, err)
}
