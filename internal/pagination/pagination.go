// Package pagination implements the skip/limit offset pagination used by
// every list endpoint. Skip and limit apply after ownership and filter
// predicates; no total count is returned.
package pagination

import "gorm.io/gorm"

// DefaultLimit is the number of rows returned when limit is not provided.
const DefaultLimit = 100

// Params holds pagination parameters parsed from query strings.
type Params struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// Defaults fills in default values when limit is not provided.
func (p *Params) Defaults() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given params.
func Paginate(p Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}
