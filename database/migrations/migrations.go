// Package migrations holds the donorlink schema. Each migration registers
// itself from init(); importing the package is enough to make the set
// available to migration.New(db).Run().
package migrations
