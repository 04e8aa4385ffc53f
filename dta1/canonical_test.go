package dta1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeaderValue(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normal", "application/json", "application/json"},
		{"leading and trailing whitespace", "  value  ", "value"},
		{"interior run collapses", "a   b\t\tc", "a b c"},
		{"whitespace only", "   ", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeHeaderValue(tc.in))
		})
	}
}

func TestBuildCanonicalRequest(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		headers := []signedHeader{
			{name: "content-type", value: "application/json"},
			{name: "x-amz-date", value: "20110909T233600Z"},
		}

		got := buildCanonicalRequest("get", "/orders", headers, hashHex([]byte("body")))

		want := "GET\n" +
			"/orders\n" +
			"\n" +
			"content-type:application/json\n" +
			"x-amz-date:20110909T233600Z\n" +
			"\n" +
			"content-type;x-amz-date\n" +
			hashHex([]byte("body"))
		assert.Equal(t, want, got)
	})

	t.Run("no headers still renders both separator lines", func(t *testing.T) {
		got := buildCanonicalRequest("GET", "/", nil, hashHex(nil))

		assert.Equal(t, "GET\n/\n\n\n\n"+hashHex(nil), got)
	})
}

func TestStringToSign(t *testing.T) {
	got := stringToSign("20110909T233600Z", "canonical")

	assert.Equal(t,
		"DTA1-HMAC-SHA256\n20110909T233600Z\n\n"+hashHex([]byte("canonical")),
		got)
}

func TestDeriveKey(t *testing.T) {
	t.Run("keys differ across days", func(t *testing.T) {
		k1 := deriveKey("SECRETKEY", "20110909")
		k2 := deriveKey("SECRETKEY", "20110910")

		assert.NotEqual(t, hex.EncodeToString(k1), hex.EncodeToString(k2))
	})

	t.Run("same day same key", func(t *testing.T) {
		assert.Equal(t, deriveKey("SECRETKEY", "20110909"), deriveKey("SECRETKEY", "20110909"))
	})
}

func TestHashHex(t *testing.T) {
	// SHA256 of the empty string, as used for bodyless requests.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hashHex(nil))
}
