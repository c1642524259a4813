package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResult_FencedJSON(t *testing.T) {
	text := "Here is what I found:\n```json\n" +
		`{"matchFound": true, "criminalData": {"name": "Al Capone", "status": "Deceased"}}` +
		"\n```\nStay safe."

	res := ParseResult(text)
	require.True(t, res.MatchFound)
	require.Equal(t, "Al Capone", res.CriminalData["name"])
	require.Equal(t, text, res.RawText)
}

func TestParseResult_BareObject(t *testing.T) {
	text := `Analysis complete. {"matchFound": true, "criminalData": {"name": "Ted Bundy", "story": "a {quoted} \"brace\" test"}} End of report.`

	res := ParseResult(text)
	require.True(t, res.MatchFound)
	require.Equal(t, "Ted Bundy", res.CriminalData["name"])
}

func TestParseResult_NoMatchPhrase(t *testing.T) {
	res := ParseResult("No criminal match found.")
	require.False(t, res.MatchFound)
	require.Nil(t, res.CriminalData)
}

func TestParseResult_FreeTextWithoutJSON(t *testing.T) {
	// No object and no no-match phrase: treated as a claimed match with
	// only the raw text to show.
	res := ParseResult("The person resembles a known offender but details are unclear.")
	require.True(t, res.MatchFound)
	require.Nil(t, res.CriminalData)
}

func TestExtractJSON_UnterminatedObject(t *testing.T) {
	_, ok := ExtractJSON(`leading text {"matchFound": true`)
	require.False(t, ok)
}
