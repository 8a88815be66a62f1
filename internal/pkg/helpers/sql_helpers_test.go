package helpers

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullStringRoundTrip(t *testing.T) {
	assert.Equal(t, sql.NullString{}, GetNullString(nil))
	assert.Nil(t, NullStringPtr(sql.NullString{}))

	name := "Lovelace"
	ns := GetNullString(&name)
	assert.Equal(t, sql.NullString{String: "Lovelace", Valid: true}, ns)

	back := NullStringPtr(ns)
	if assert.NotNil(t, back) {
		assert.Equal(t, name, *back)
	}

	empty := ""
	assert.True(t, GetNullString(&empty).Valid, "empty string is a value, not NULL")
}
