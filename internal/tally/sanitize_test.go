package tally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledgerly/internal/tally"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Rice", "Rice"},
		{"trims", "  Rice \n", "Rice"},
		{"strips markup", "<B>Rice</B> Basmati", "Rice Basmati"},
		{"decodes entities", "Tom &amp; Jerry &quot;Ltd&quot;", `Tom & Jerry "Ltd"`},
		{"decoded markup is stripped", "&lt;b&gt;Bold&lt;/b&gt;", "Bold"},
		{"lone angle brackets", "a &lt; b", "a < b"},
		{"double encoded", "&amp;amp;", "&"},
		{"only markup", "<EMPTY/>", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tally.Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Rice",
		"  padded  ",
		"<B>x</B>",
		"&lt;b&gt;x&lt;/b&gt;",
		"&amp;lt;NAME&amp;gt;",
		"&amp;amp;amp;",
		"a &lt; b &gt; c",
		"<<>>",
		"&lt;&lt;&gt;&gt;",
		"&quot; &lt;",
		"Tom &amp; Jerry",
		" &lt; ",
		"<a href=\"x\">link</a> &amp;&amp; more",
	}
	for _, in := range inputs {
		once := tally.Sanitize(in)
		assert.Equal(t, once, tally.Sanitize(once), "input %q", in)
	}
}

func FuzzSanitize(f *testing.F) {
	for _, seed := range []string{
		"",
		"Rice",
		"<B>x</B>",
		"&lt;b&gt;x&lt;/b&gt;",
		"&amp;lt;NAME&amp;gt;",
		"a &lt; b &gt; c",
		"<<>>",
		" &quot;&amp;&quot; ",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		once := tally.Sanitize(in)
		if twice := tally.Sanitize(once); twice != once {
			t.Fatalf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	})
}
