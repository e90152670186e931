package postgres

import (
	"context"
	"time"

	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"
	"skyvault/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository implements the domain.ContentRepository interface using GORM.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

// FindByID retrieves a single listing by its unique ID.
func (repo *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	var contentM model.ContentModel
	if err := repo.db.WithContext(ctx).First(&contentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content by id")
	}

	return contentM.ToEntity(), nil
}

// FindByIDs retrieves the listings for the given IDs. Missing IDs are skipped.
func (repo *contentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.ContentModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contents by ids")
	}

	return toContentEntities(models), nil
}

// FindByCreator returns all listings owned by a creator, newest first.
func (repo *contentRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Content, error) {
	var models []model.ContentModel
	if err := repo.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contents by creator")
	}

	return toContentEntities(models), nil
}

// FindByStatus returns listings in a moderation state, newest first.
func (repo *contentRepository) FindByStatus(ctx context.Context, status entity.ContentStatus, page repository.PageRequest) (*repository.Page[*entity.Content], error) {
	query := repo.db.WithContext(ctx).Model(&model.ContentModel{}).Where("status = ?", status.String())

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count contents by status")
	}

	var models []model.ContentModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contents by status")
	}

	return &repository.Page[*entity.Content]{Items: toContentEntities(models), Total: total}, nil
}

// Search pages through approved listings matching the filters.
func (repo *contentRepository) Search(ctx context.Context, search repository.ContentSearch, page repository.PageRequest) (*repository.Page[*entity.Content], error) {
	query := repo.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("status = ?", entity.ContentStatusApproved.String())

	if search.Query != "" {
		// Tags are stored as a jsonb array; the text cast keeps the
		// keyword filter index-free but simple.
		pattern := "%" + search.Query + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR location ILIKE ? OR tags::text ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if search.Category != "" {
		query = query.Where("category = ?", search.Category)
	}
	if search.Location != "" {
		query = query.Where("location ILIKE ?", "%"+search.Location+"%")
	}
	if search.Resolution != "" {
		query = query.Where("resolution = ?", search.Resolution)
	}
	if search.MinPrice != nil {
		query = query.Where("price >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		query = query.Where("price <= ?", *search.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count content search")
	}

	var models []model.ContentModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search contents")
	}

	return &repository.Page[*entity.Content]{Items: toContentEntities(models), Total: total}, nil
}

// Create persists a new listing.
func (repo *contentRepository) Create(ctx context.Context, content *entity.Content) error {
	contentM := model.ContentModelFromEntity(content)

	if err := repo.db.WithContext(ctx).Create(contentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required content information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create content")
	}

	content.CreatedAt = contentM.CreatedAt
	content.UpdatedAt = contentM.UpdatedAt

	return nil
}

// Update modifies an existing listing.
func (repo *contentRepository) Update(ctx context.Context, content *entity.Content) error {
	contentM := model.ContentModelFromEntity(content)

	if err := repo.db.WithContext(ctx).Save(contentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update content")
	}

	content.UpdatedAt = contentM.UpdatedAt

	return nil
}

// Delete removes a listing.
func (repo *contentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ContentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// IncrementViews bumps the view counter without a read-modify-write.
func (repo *contentRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment views")
	}

	return nil
}

// RecordPurchase bumps the download counter of each listing and adds its
// own price to its accumulated earnings.
func (repo *contentRepository) RecordPurchase(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Model(&model.ContentModel{}).
		Where("id IN ?", ids).
		UpdateColumns(map[string]any{
			"downloads":  gorm.Expr("downloads + 1"),
			"earnings":   gorm.Expr("earnings + price"),
			"updated_at": time.Now(),
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record purchase")
	}

	return nil
}

func toContentEntities(models []model.ContentModel) []*entity.Content {
	contents := make([]*entity.Content, 0, len(models))
	for i := range models {
		contents = append(contents, models[i].ToEntity())
	}

	return contents
}
