package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=abc&t=42", "https://www.youtube.com/embed/abc"},
		{"https://m.youtube.com/watch?v=abc", "https://www.youtube.com/embed/abc"},
		{"https://youtu.be/abc", "https://www.youtube.com/embed/abc"},
		{"https://www.youtube.com/shorts/xyz", "https://www.youtube.com/embed/xyz"},
		{"https://www.youtube.com/embed/abc", "https://www.youtube.com/embed/abc"},
		{"https://vimeo.com/76979871", "https://player.vimeo.com/video/76979871"},
		{"https://vimeo.com/channels/staff", "https://vimeo.com/channels/staff"},
		{"/videos/local.mp4", "/videos/local.mp4"},
		{"https://example.com/clip", "https://example.com/clip"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EmbedURL(tc.in), tc.in)
	}
}

func TestJoinClasses(t *testing.T) {
	assert.Equal(t, "", joinClasses("", " ", ""))
	assert.Equal(t, "button hero", joinClasses("button", "", " hero "))
}

func TestCommentText(t *testing.T) {
	assert.Equal(t, "a b", commentText("a b"))
	assert.NotContains(t, commentText("x --> <script>"), "-->")
	assert.NotContains(t, commentText("---"), "--")
}
