package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/storage"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository создаёт новый репозиторий комментариев
func NewCommentRepository(db *gorm.DB) storage.CommentRepository {
	return &commentRepository{db: db}
}

// Create создаёт комментарий
func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Str("comment_id", comment.ID).
		Str("bug_id", comment.BugID).
		Msg("creating comment")

	dbComment := &Comment{
		CommentID: comment.ID,
		BugID:     comment.BugID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
	}

	if err := r.db.WithContext(ctx).Create(dbComment).Error; err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("comment_id", comment.ID).
			Msg("error creating comment")
		return err
	}

	comment.CreatedAt = &dbComment.CreatedAt
	return nil
}

// GetByID возвращает комментарий по ID
func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	var dbComment Comment
	err := r.db.WithContext(ctx).First(&dbComment, "comment_id = ?", commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	comment := mapCommentToDomain(&dbComment)
	return &comment, nil
}

// ListByBug возвращает комментарии бага по возрастанию created_at
func (r *commentRepository) ListByBug(ctx context.Context, bugID string) ([]domain.Comment, error) {
	var dbComments []Comment
	err := r.db.WithContext(ctx).
		Where("bug_id = ?", bugID).
		Order("created_at").
		Find(&dbComments).Error
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, len(dbComments))
	for i, c := range dbComments {
		comments[i] = mapCommentToDomain(&c)
	}
	return comments, nil
}

// Update обновляет текст комментария и ставит edited_at
func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&Comment{}).
		Where("comment_id = ?", comment.ID).
		Updates(map[string]interface{}{
			"body":      comment.Body,
			"edited_at": now,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	comment.EditedAt = &now
	return nil
}

// Delete удаляет комментарий
func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	result := r.db.WithContext(ctx).Delete(&Comment{}, "comment_id = ?", commentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func mapCommentToDomain(c *Comment) domain.Comment {
	return domain.Comment{
		ID:        c.CommentID,
		BugID:     c.BugID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: &c.CreatedAt,
		EditedAt:  c.EditedAt,
	}
}
