package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/plumepress/plume/pkg/internal/cache"
	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/plumepress/plume/pkg/internal/models"
	"gorm.io/gorm"
)

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Order("slug ASC").Find(&groups).Error

	return groups, err
}

// GetGroup resolves a group by its slug. Lookups ride the in-process
// cache since every group-scoped listing and every form submission with a
// group field goes through here.
func GetGroup(slug string) (models.Group, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	cacheKey := fmt.Sprintf("group#%s", slug)
	if hit, err := marshal.Get(ctx, cacheKey, new(models.Group)); err == nil {
		return *hit.(*models.Group), nil
	}

	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, err
	}

	_ = marshal.Set(
		ctx,
		cacheKey,
		group,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"groups", fmt.Sprintf("group#%s", slug)}),
	)

	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{
		BaseModel: models.BaseModel{ID: id},
	}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	}

	err := database.C.Create(&group).Error

	return group, err
}

func EditGroup(group models.Group, slug, title, description string) (models.Group, error) {
	group.Slug = slug
	group.Title = title
	group.Description = description

	if err := database.C.Save(&group).Error; err != nil {
		return group, err
	}

	FlushGroupCache()

	return group, nil
}

// DeleteGroup removes the group and detaches its posts in one
// transaction. Posts outlive their group, they only lose the reference.
func DeleteGroup(group models.Group) error {
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
	if err != nil {
		return err
	}

	FlushGroupCache()

	return nil
}

func FlushGroupCache() {
	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{"groups"}),
	)
}
