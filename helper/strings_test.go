package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	tests := map[string]string{
		"Email":          "email",
		"ProfilePicture": "profile_picture",
		"ImageURL":       "image_url",
		"ID":             "id",
		"HTTPStatus":     "http_status",
		"Field2Name":     "field2_name",
	}

	for in, want := range tests {
		assert.Equal(t, want, Underscore(in), in)
	}
}
