package htmlentity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello &amp; World", "Hello & World"},
		{"&lt;b&gt;bold&lt;/b&gt;", "<b>bold</b>"},
		{"&quot;quoted&quot;", `"quoted"`},
		{"it&apos;s", "it's"},
		{"a&nbsp;b", "a b"},
		{"&#8216;curly&#8217;", "‘curly’"},
		{"&#8220;double&#8221;", "“double”"},
		{"dash&#8211;dash&#8212;dash", "dash–dash—dash"},
		{"wait&#8230;", "wait…"},
		{"non&#8209;breaking", "non‐breaking"},
		{"&#169; &#174; &#8482;", "© ® ™"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Decode(tt.input))
	}
}

func TestDecode_UnknownEntitiesKept(t *testing.T) {
	require.Equal(t, "&euml; &#12345; &bogus;", Decode("&euml; &#12345; &bogus;"))
}

func TestDecode_SinglePass(t *testing.T) {
	// Replacement output must not be rescanned.
	require.Equal(t, "&lt;", Decode("&amp;lt;"))
	require.Equal(t, "&amp;", Decode("&amp;amp;"))
}
