// Package orm is a small chainable wrapper over the request-scoped GORM
// session that times every terminal call into pkg/metrics.
package orm

import (
	"context"
	"time"

	"github.com/shashiranjanraj/donorlink/pkg/cache"
	"github.com/shashiranjanraj/donorlink/pkg/database"
	"github.com/shashiranjanraj/donorlink/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db  *gorm.DB
	ctx context.Context
}

// DB starts a query on the session carried by ctx.
func DB(ctx context.Context) *Query {
	return &Query{db: database.FromCtx(ctx), ctx: ctx}
}

func (q *Query) wrap(db *gorm.DB) *Query {
	return &Query{db: db, ctx: q.ctx}
}

func (q *Query) Model(v interface{}) *Query {
	return q.wrap(q.db.Model(v))
}

func (q *Query) Table(name string, args ...interface{}) *Query {
	return q.wrap(q.db.Table(name, args...))
}

func (q *Query) Select(query interface{}, args ...interface{}) *Query {
	return q.wrap(q.db.Select(query, args...))
}

func (q *Query) Joins(query string, args ...interface{}) *Query {
	return q.wrap(q.db.Joins(query, args...))
}

func (q *Query) Where(query interface{}, args ...interface{}) *Query {
	return q.wrap(q.db.Where(query, args...))
}

func (q *Query) Order(value interface{}) *Query {
	return q.wrap(q.db.Order(value))
}

// Get loads every matching row into dest.
func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First loads the first row by primary key; gorm.ErrRecordNotFound when none.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Scan loads a projection (Select/Joins) into dest.
func (q *Query) Scan(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Scan(dest).Error
}

func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("count", time.Now())
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Exists reports whether at least one row matches.
func (q *Query) Exists() (bool, error) {
	n, err := q.Count()
	return n > 0, err
}

func (q *Query) Create(value interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(value).Error
}

// Update sets one column on the rows selected by Model/Where.
func (q *Query) Update(column string, value interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Update(column, value).Error
}

// Cache serves dest from the cache at key, falling back to Get and
// populating the cache on a miss.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(q.ctx, key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	_ = cache.Set(q.ctx, key, dest, ttl)
	return nil
}
