package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContentLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{name: "empty", link: "", want: ""},
		{name: "whitespace only", link: "   ", want: ""},
		{name: "https", link: " https://diary.app/p/1 ", want: "https://diary.app/p/1"},
		{name: "http", link: "http://example.com", want: "http://example.com"},
		{name: "no scheme", link: "example.com/abc", wantErr: true},
		{name: "javascript scheme", link: "javascript://alert(1)", wantErr: true},
		{name: "ftp", link: "ftp://files.example.com/a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeContentLink(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstLink(t *testing.T) {
	assert.Equal(t, "https://naver.me/abc123", FirstLink("오늘 간 곳 https://naver.me/abc123 좋았다"))
	assert.Equal(t, "", FirstLink("링크 없음"))
}
