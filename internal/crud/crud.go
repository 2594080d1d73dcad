// Package crud implements the generic create/read/update/delete
// operations shared by the User, Token and Todo kinds. Uniqueness
// violations and missing rows are translated into Conflict and
// NotFound errors; every other store fault propagates untranslated.
package crud

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tabelsky/todo-flask-netology/internal/util"
)

// Entity is a persisted kind the engine operates on.
type Entity interface {
	Kind() string
}

// Patch is an allow-listed field setter for one entity kind. It
// applies exactly the fields its schema may produce, nothing else.
type Patch[T any] interface {
	Apply(*T)
}

// GetByID loads an entity by primary key.
func GetByID[T Entity](db *gorm.DB, id uint) (*T, error) {
	var item T
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFound(fmt.Sprintf("%s not found", item.Kind()))
		}
		return nil, err
	}
	return &item, nil
}

// Create persists a new entity.
func Create[T Entity](db *gorm.DB, item *T) error {
	return translate[T](db.Create(item).Error)
}

// Update persists an already-applied entity.
func Update[T Entity](db *gorm.DB, item *T) error {
	return translate[T](db.Save(item).Error)
}

// UpdateItem applies a patch to a loaded entity and persists it.
func UpdateItem[T Entity](db *gorm.DB, item *T, patch Patch[T]) error {
	patch.Apply(item)
	return Update(db, item)
}

// UpdateByID composes GetByID and UpdateItem, propagating NotFound
// from the lookup.
func UpdateByID[T Entity](db *gorm.DB, id uint, patch Patch[T]) (*T, error) {
	item, err := GetByID[T](db, id)
	if err != nil {
		return nil, err
	}
	if err := UpdateItem(db, item, patch); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an entity. Cascading deletes of dependents are the
// store's responsibility.
func Delete[T Entity](db *gorm.DB, item *T) error {
	return db.Delete(item).Error
}

func translate[T Entity](err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var item T
		return util.Conflict(fmt.Sprintf("%s already exists", item.Kind()))
	}
	return err
}
