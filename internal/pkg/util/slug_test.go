package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  Leading and trailing  ", "--leading-and-trailing--"},
		{"Go 1.24 Release Notes", "go-124-release-notes"},
		{"UPPERCASE", "uppercase"},
		{"already-a-slug", "already-a-slug"},
		{"émojis 🎉 and accents", "mojis--and-accents"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestReadTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime("short"))
	assert.Equal(t, 1, ReadTime(words(99)))
	// 100/200 rounds half up to 1, 299/200 rounds to 1, 300/200 to 2.
	assert.Equal(t, 1, ReadTime(words(100)))
	assert.Equal(t, 1, ReadTime(words(299)))
	assert.Equal(t, 2, ReadTime(words(300)))
	assert.Equal(t, 2, ReadTime(words(400)))
	assert.Equal(t, 5, ReadTime(words(1000)))
}
