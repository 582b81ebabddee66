package artist

import (
	"context"
	"errors"

	"makeupshop/internal/domain"

	"gorm.io/gorm"
)

var ErrArtistNotFound = errors.New("artist not found")

type ArtistRepository interface {
	Create(ctx context.Context, a *domain.Artist) error
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
	Update(ctx context.Context, a *domain.Artist) error
}

type Service struct {
	artists ArtistRepository
}

func NewService(artists ArtistRepository) *Service {
	return &Service{artists: artists}
}

func (s *Service) Create(ctx context.Context, req ProfileRequest) (*domain.Artist, error) {
	a := &domain.Artist{
		Nickname:     req.Nickname,
		Name:         req.Name,
		ProfileImg:   req.ProfileImg,
		Gender:       req.Gender,
		Email:        req.Email,
		Introduction: req.Introduction,
	}
	if err := s.artists.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateProfile(ctx context.Context, artistID int64, req ProfileRequest) error {
	a, err := s.artists.GetByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtistNotFound
		}
		return err
	}

	if req.Nickname != "" {
		a.Nickname = req.Nickname
	}
	if req.Name != "" {
		a.Name = req.Name
	}
	if req.ProfileImg != "" {
		a.ProfileImg = req.ProfileImg
	}
	if req.Gender != "" {
		a.Gender = req.Gender
	}
	if req.Email != "" {
		a.Email = req.Email
	}
	if req.Introduction != "" {
		a.Introduction = req.Introduction
	}

	return s.artists.Update(ctx, a)
}

func (s *Service) GetProfile(ctx context.Context, artistID int64) (*domain.Artist, error) {
	a, err := s.artists.GetByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}
