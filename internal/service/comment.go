package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"buglens/internal/domain"
	"buglens/internal/logger"
	"buglens/internal/metrics"
	"buglens/internal/storage"
)

// mentionPattern вылавливает @username в теле комментария
var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9_.-]+)`)

// AddComment добавляет комментарий с обработкой @упоминаний.
// Каждый @username, совпавший с участником организации, получает уведомление.
func (s *Service) AddComment(outerCtx context.Context, input *domain.AddCommentInput) (*domain.Comment, error) {
	const op = "service.AddComment"
	defer observe(op, time.Now())
	requestID := logger.GetRequestID(outerCtx)
	var comment *domain.Comment

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		bug, err := tx.BugRepo().GetByID(ctx, input.BugID)
		if err != nil {
			return err
		}
		orgID, err := bugOrg(ctx, tx, bug)
		if err != nil {
			return err
		}
		if _, err := requireWriter(ctx, tx, orgID, input.AuthorID); err != nil {
			return err
		}

		comment = &domain.Comment{
			ID:       uuid.NewString(),
			BugID:    input.BugID,
			AuthorID: input.AuthorID,
			Body:     input.Body,
		}
		if err := tx.CommentRepo().Create(ctx, comment); err != nil {
			return err
		}

		payload := map[string]any{
			"bug_id":     bug.ID,
			"bug_title":  bug.Title,
			"comment_id": comment.ID,
			"author_id":  input.AuthorID,
		}
		if err := notifyBugWatchers(ctx, tx, orgID, bug, input.AuthorID, domain.NotificationCommentAdded, payload); err != nil {
			return err
		}

		// @упоминания: ищем участников организации по username
		mentioned := make(map[string]bool)
		for _, match := range mentionPattern.FindAllStringSubmatch(input.Body, -1) {
			username := match[1]
			if mentioned[username] {
				continue
			}
			mentioned[username] = true

			member, err := tx.OrgRepo().FindMemberByUsername(ctx, orgID, username)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					continue
				}
				return err
			}
			if member.UserID == input.AuthorID || !member.IsActive {
				continue
			}

			notification := &domain.Notification{
				ID:          uuid.NewString(),
				OrgID:       orgID,
				RecipientID: member.UserID,
				Kind:        domain.NotificationMention,
				Payload:     payload,
			}
			if err := tx.NotificationRepo().Create(ctx, notification); err != nil {
				return err
			}
			metrics.NotificationCreatedTotal.WithLabelValues(string(domain.NotificationMention)).Inc()
		}

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("bug_id", input.BugID).
			Str("comment_id", comment.ID).
			Msg("comment added")

		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return comment, nil
}

// EditComment правит текст комментария, разрешено только автору
func (s *Service) EditComment(outerCtx context.Context, input *domain.EditCommentInput) (*domain.Comment, error) {
	const op = "service.EditComment"
	defer observe(op, time.Now())
	var comment *domain.Comment

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.CommentRepo().GetByID(ctx, input.CommentID)
		if err != nil {
			return err
		}
		if found.AuthorID != input.ActorID {
			return domain.ErrForbidden
		}

		found.Body = input.Body
		if err := tx.CommentRepo().Update(ctx, found); err != nil {
			return err
		}
		comment = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return comment, nil
}

// DeleteComment удаляет комментарий, разрешено только автору
func (s *Service) DeleteComment(outerCtx context.Context, commentID, actorID string) error {
	const op = "service.DeleteComment"
	defer observe(op, time.Now())

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		found, err := tx.CommentRepo().GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if found.AuthorID != actorID {
			return domain.ErrForbidden
		}
		return tx.CommentRepo().Delete(ctx, commentID)
	})

	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}

// ListComments возвращает комментарии бага по возрастанию времени
func (s *Service) ListComments(outerCtx context.Context, bugID, actorID string) ([]domain.Comment, error) {
	const op = "service.ListComments"
	defer observe(op, time.Now())
	var comments []domain.Comment

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		bug, err := tx.BugRepo().GetByID(ctx, bugID)
		if err != nil {
			return err
		}
		orgID, err := bugOrg(ctx, tx, bug)
		if err != nil {
			return err
		}
		if _, err := requireMember(ctx, tx, orgID, actorID); err != nil {
			return err
		}
		found, err := tx.CommentRepo().ListByBug(ctx, bugID)
		if err != nil {
			return err
		}
		comments = found
		return nil
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return comments, nil
}
