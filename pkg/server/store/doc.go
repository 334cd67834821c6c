// Package store defines the storage interfaces used by the admin
// endpoints. Implementations live in the gorm subpackage.
package store
