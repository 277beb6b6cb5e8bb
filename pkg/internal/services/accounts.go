package services

import (
	"errors"
	"fmt"

	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/plumepress/plume/pkg/internal/models"
	"gorm.io/gorm"
)

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{Name: name}).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

// EnsureAccount projects a verified identity into the local account
// table, refreshing the display fields when the provider changed them.
func EnsureAccount(name, nick, avatar string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where(models.Account{Name: name}).First(&account).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return account, err
		}
		account = models.Account{
			Name:   name,
			Nick:   nick,
			Avatar: avatar,
		}
		if err := database.C.Create(&account).Error; err != nil {
			return account, err
		}
		return account, nil
	}

	if account.Nick != nick || account.Avatar != avatar {
		account.Nick = nick
		account.Avatar = avatar
		if err := database.C.Save(&account).Error; err != nil {
			return account, err
		}
	}

	return account, nil
}

// DeleteAccount takes the account's posts with it, in one transaction.
func DeleteAccount(account models.Account) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", account.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
}
