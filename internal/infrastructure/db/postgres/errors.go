package postgres

import (
	"errors"

	"gorm.io/gorm"
)

// translate maps a missing row to the entity's not-found error.
func translate(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
