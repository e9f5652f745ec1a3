package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forumapi/go-forum-api/domain"
	"github.com/forumapi/go-forum-api/internal/repository"
	"github.com/forumapi/go-forum-api/internal/repository/mysql/model"
)

const likeIDPrefix = "like-"

type likeRepository struct {
	DB    *gorm.DB
	idGen repository.IDGenerator
}

var _ domain.LikeRepository = (*likeRepository)(nil)

// NewLikeRepository will create an implementation of domain.LikeRepository
func NewLikeRepository(db *gorm.DB, idGen repository.IDGenerator) *likeRepository {
	return &likeRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (m *likeRepository) IsLiked(ctx context.Context, commentID string, userID string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *likeRepository) Store(ctx context.Context, commentID string, userID string) error {
	likeModel := model.Like{
		ID:        likeIDPrefix + m.idGen(),
		UserID:    userID,
		CommentID: commentID,
	}
	// The unique index on (comment_id, user_id) absorbs concurrent toggles.
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&likeModel).Error
}

func (m *likeRepository) Remove(ctx context.Context, commentID string, userID string) error {
	return m.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.Like{}).Error
}

func (m *likeRepository) CountByCommentID(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
