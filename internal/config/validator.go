package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

var errDatabaseURL = errors.New("database.url (or DATABASE_URL) is required when storage.driver is postgres")

// validateStruct runs tag rules plus the cross-section checks tags can't
// express.
func validateStruct(c *Config) error {
	if err := v.Struct(c); err != nil {
		return err
	}
	if c.Storage.Driver == "postgres" && c.Database.URL == "" {
		return errDatabaseURL
	}
	return nil
}
