package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text passes through", in: "  Line one\nLine two  ", want: "Line one\nLine two"},
		{name: "paragraphs", in: "<p>First paragraph.</p><p>Second.</p>", want: "First paragraph.\n\nSecond."},
		{name: "list", in: "<ul><li>Go</li><li>SQL</li></ul>", want: "• Go\n• SQL"},
		{name: "inline bold", in: "Hello <b>world</b>!", want: "Hello **world**!"},
		{name: "line breaks and entities", in: "Great pay &amp; benefits<br>Apply now", want: "Great pay & benefits\nApply now"},
		{name: "plain text with less-than sign", in: "Line one\nLine two\nSalary < 30k", want: "Line one\nLine two\nSalary < 30k"},
		{name: "tag-like plain text", in: "C<b and x>y", want: "C<b and x>y"},
		{name: "tag-like text in a list", in: "Requirements:\n- C<b and x>y\n- More", want: "Requirements:\n- C<b and x>y\n- More"},
		{name: "less-than inside markup", in: "<p>Salary < 30k</p>", want: "Salary < 30k"},
		{name: "nested div", in: "<div><p>Intro</p><ul><li>One</li></ul></div>", want: "Intro\n\n• One"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
