package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/Bharathisthe/Testing/internal/api/types"
)

// Response is a fully read HTTP reply.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Token returns the auth-sec-token response header, or "".
func (r *Response) Token() string {
	return r.Header.Get(types.TokenHeader)
}

func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("client: decode HTTP %d body: %w (body: %.200s)", r.Status, err, r.Body)
	}
	return nil
}

// Message returns the body's message field.
func (r *Response) Message() (string, error) {
	var m types.MessageBody
	if err := r.Decode(&m); err != nil {
		return "", err
	}
	return m.Message, nil
}

// MessageMatches reports whether the message field contains any of words,
// ignoring case. A body without a message never matches.
func (r *Response) MessageMatches(words ...string) bool {
	msg, err := r.Message()
	if err != nil || msg == "" || len(words) == 0 {
		return false
	}
	return WordsPattern(words...).MatchString(msg)
}

// WordsPattern builds the case-insensitive alternation of words, for use
// with assert.Regexp and friends.
func WordsPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(w))
	}
	return regexp.MustCompile("(?i)" + strings.Join(quoted, "|"))
}

func (r *Response) String() string {
	return fmt.Sprintf("HTTP %d %s", r.Status, strings.TrimSpace(string(r.Body)))
}
