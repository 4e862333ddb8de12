package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("there is no profile for this user")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetByUserID returns the profile owned by userID with the owning user
// attached.
func (s *ProfileService) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

func (s *ProfileService) List() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Preload("User").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Upsert creates the profile on first submission and otherwise applies a
// sparse update: only submitted fields are written, everything else keeps its
// stored value. The social sub-record is rebuilt from the submitted links on
// every call.
func (s *ProfileService) Upsert(userID uuid.UUID, req *dto.UpsertProfileRequest) (*models.Profile, error) {
	skills := ParseSkills(req.Skills)
	social := models.SocialLinks{
		Youtube:   deref(req.Youtube),
		Twitter:   deref(req.Twitter),
		Facebook:  deref(req.Facebook),
		Linkedin:  deref(req.Linkedin),
		Instagram: deref(req.Instagram),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		err := lockForUpdate(tx).Where("user_id = ?", userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile := models.Profile{
				ID:         uuid.New(),
				UserID:     userID,
				Company:    deref(req.Company),
				Website:    deref(req.Website),
				Location:   deref(req.Location),
				Bio:        deref(req.Bio),
				Status:     req.Status,
				Skills:     datatypes.NewJSONSlice(skills),
				Social:     datatypes.NewJSONType(social),
				Experience: datatypes.JSONSlice[models.Experience]{},
				Education:  datatypes.JSONSlice[models.Education]{},
			}
			return tx.Create(&profile).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status": req.Status,
			"skills": datatypes.NewJSONSlice(skills),
			"social": datatypes.NewJSONType(social),
		}
		if v, ok := submitted(req.Company); ok {
			updates["company"] = v
		}
		if v, ok := submitted(req.Website); ok {
			updates["website"] = v
		}
		if v, ok := submitted(req.Location); ok {
			updates["location"] = v
		}
		if v, ok := submitted(req.Bio); ok {
			updates["bio"] = v
		}

		return tx.Model(&existing).Updates(updates).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return s.GetByUserID(userID)
}

// AddExperience prepends a new entry with a fresh id. The profile must
// already exist; this never creates one implicitly.
func (s *ProfileService) AddExperience(userID uuid.UUID, req *dto.ExperienceRequest) (*models.Profile, error) {
	entry := models.Experience{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	err := s.mutate(userID, func(p *models.Profile) {
		p.AddExperience(entry)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByUserID(userID)
}

// RemoveExperience deletes the entry with the given id. An unknown or
// malformed id is a no-op and still returns the profile.
func (s *ProfileService) RemoveExperience(userID uuid.UUID, entryID string) (*models.Profile, error) {
	err := s.mutate(userID, func(p *models.Profile) {
		p.RemoveExperience(entryID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByUserID(userID)
}

func (s *ProfileService) AddEducation(userID uuid.UUID, req *dto.EducationRequest) (*models.Profile, error) {
	entry := models.Education{
		ID:          uuid.New(),
		School:      req.School,
		Degree:      req.Degree,
		Field:       req.Field,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	err := s.mutate(userID, func(p *models.Profile) {
		p.AddEducation(entry)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByUserID(userID)
}

func (s *ProfileService) RemoveEducation(userID uuid.UUID, entryID string) (*models.Profile, error) {
	err := s.mutate(userID, func(p *models.Profile) {
		p.RemoveEducation(entryID)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByUserID(userID)
}

// DeleteAccount removes the profile and then the user inside one transaction
// so a crash cannot leave an orphaned user behind. Missing rows are not an
// error.
func (s *ProfileService) DeleteAccount(userID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
}

// mutate runs a read-modify-write on the owner's profile under a row lock so
// two concurrent entry mutations cannot lose an insertion.
func (s *ProfileService) mutate(userID uuid.UUID, fn func(p *models.Profile)) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := lockForUpdate(tx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}

		fn(&profile)
		return tx.Model(&profile).Updates(map[string]interface{}{
			"experience": profile.Experience,
			"education":  profile.Education,
		}).Error
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// lockForUpdate acquires a FOR UPDATE row lock where the dialect supports it.
// SQLite serializes writers on its own and rejects the clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// ParseSkills splits the comma-delimited skills string into trimmed tokens,
// dropping empties. Resubmitting the same string yields the same set.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// submitted reports whether an optional patch field carries a value. Empty
// strings count as absent, matching the upsert contract.
func submitted(p *string) (string, bool) {
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
