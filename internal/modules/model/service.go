package model

import (
	"context"
	"errors"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

var ErrModelNotFound = errors.New("model not found")

type ModelRepository interface {
	Create(ctx context.Context, m *domain.Model) error
	GetByID(ctx context.Context, id int64) (*domain.Model, error)
	Update(ctx context.Context, m *domain.Model) error
}

type Service struct {
	models ModelRepository
}

func NewService(models ModelRepository) *Service {
	return &Service{models: models}
}

func (s *Service) Create(ctx context.Context, req ProfileRequest) (*domain.Model, error) {
	m := &domain.Model{
		Nickname:      req.Nickname,
		Name:          req.Name,
		ProfileImg:    req.ProfileImg,
		Gender:        req.Gender,
		Email:         req.Email,
		SkinType:      req.SkinType,
		PersonalColor: req.PersonalColor,
		Introduction:  req.Introduction,
	}
	if err := s.models.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) UpdateProfile(ctx context.Context, modelID int64, req ProfileRequest) error {
	m, err := s.models.GetByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModelNotFound
		}
		return err
	}

	if req.Nickname != "" {
		m.Nickname = req.Nickname
	}
	if req.Name != "" {
		m.Name = req.Name
	}
	if req.ProfileImg != "" {
		m.ProfileImg = req.ProfileImg
	}
	if req.Gender != "" {
		m.Gender = req.Gender
	}
	if req.Email != "" {
		m.Email = req.Email
	}
	if req.SkinType != "" {
		m.SkinType = req.SkinType
	}
	if req.PersonalColor != "" {
		m.PersonalColor = req.PersonalColor
	}
	if req.Introduction != "" {
		m.Introduction = req.Introduction
	}

	return s.models.Update(ctx, m)
}

func (s *Service) GetProfile(ctx context.Context, modelID int64) (*domain.Model, error) {
	m, err := s.models.GetByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	return m, nil
}
