package database

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestStatusStore_SetAndGet(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	database, err := NewInMemoryDatabase()
	r.Nil(err)
	defer database.Close()
	sut := NewStatusStore(database)

	t.Run("Missing key", func(t *testing.T) {
		status, err := sut.GetStatus(LastImagePath)
		a.Nil(err)
		a.Nil(status)
	})

	t.Run("Insert", func(t *testing.T) {
		r.Nil(sut.SetValue(LastImagePath, "/images/a.png", testTime))
		value, found, err := sut.GetValue(LastImagePath)
		a.Nil(err)
		a.True(found)
		a.Equal("/images/a.png", value)
	})

	t.Run("Update", func(t *testing.T) {
		r.Nil(sut.SetValue(LastImagePath, "/images/b.png", testTime.Add(time.Minute)))
		status, err := sut.GetStatus(LastImagePath)
		a.Nil(err)
		a.Equal("/images/b.png", status.Value)
		a.True(testTime.Add(time.Minute).Equal(status.UpdatedTime))

		count, err := sut.getCollection().Find().Count()
		a.Nil(err)
		a.Equal(uint64(1), count)
	})
}
