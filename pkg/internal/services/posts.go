package services

import (
	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/plumepress/plume/pkg/internal/models"
	"gorm.io/gorm"
)

// Canonical listing order, identical across every scope. Ties on the
// timestamp fall back to the id so the order stays deterministic.
const PostDefaultOrder = "created_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func ListPost(tx *gorm.DB) ([]models.Post, error) {
	var items []models.Post
	if err := PreloadGeneral(tx).
		Order(PostDefaultOrder).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func GetPost(id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(database.C).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func NewPost(user models.Account, text string, group *models.Group, attachment *string) (models.Post, error) {
	item := models.Post{
		Text:       text,
		Attachment: attachment,
		AuthorID:   user.ID,
		Author:     user,
	}
	if group != nil {
		item.GroupID = &group.ID
		item.Group = group
	}

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// EditPost rewrites the mutable columns only; the author and the creation
// timestamp are never part of the update statement.
func EditPost(post models.Post, text string, group *models.Group, attachment *string) (models.Post, error) {
	var groupID *uint
	if group != nil {
		groupID = &group.ID
	}

	if err := database.C.Model(&post).Updates(map[string]any{
		"text":       text,
		"group_id":   groupID,
		"attachment": attachment,
	}).Error; err != nil {
		return post, err
	}

	post.Text = text
	post.GroupID = groupID
	post.Group = group
	post.Attachment = attachment

	return post, nil
}

func DeletePost(post models.Post) error {
	return database.C.Delete(&post).Error
}
