package review

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	MaxCommentLength = 1000
	MaxImages        = 5
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional; the zero value is an empty comment.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) IsEmpty() bool  { return c.text == "" }

type Images struct {
	urls []string
}

func NewImages(urls []string) (Images, error) {
	if len(urls) > MaxImages {
		return Images{}, ErrTooManyImages
	}
	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Images{}, ErrInvalidImageURL
		}
		out = append(out, raw)
	}
	return Images{urls: out}, nil
}

// ImagesOf rebuilds stored images without re-validating them.
func ImagesOf(urls []string) Images {
	return Images{urls: append([]string(nil), urls...)}
}

func (i Images) URLs() []string {
	return append([]string(nil), i.urls...)
}

func (i Images) Len() int { return len(i.urls) }
