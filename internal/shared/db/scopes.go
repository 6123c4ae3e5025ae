package db

import (
	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for a 1-based page. A non-positive pageSize leaves the query unbounded.
//
//	tx.Model(&models.ComplaintModel{}).Scopes(db.Paginate(page, pageSize)).Find(&rows)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Limit(pageSize).Offset((page - 1) * pageSize)
	}
}

// CreatedBetween restricts a unix-millisecond column to the half-open range [from, to).
// Nil bounds are ignored.
func CreatedBetween(column string, from, to *int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" < ?", *to)
		}
		return db
	}
}
