package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loadenv/internal/model"
)

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "a...a"},
		{"ab", "a...b"},
		{"abc", "a...c"},
		{"abcd", "ab...d"},
		{"abcdef", "ab...f"},
		{"abcdefg", "abcd...fg"},
		{"abcdefgh", "abcd...gh"},
		{"supersecretvalue", "supe...ue"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mask(tt.in), "Mask(%q)", tt.in)
	}
}

func TestIsSecretKey(t *testing.T) {
	assert.True(t, IsSecretKey("MY_API_KEY"))
	assert.True(t, IsSecretKey("MYAPIKEY"))
	assert.True(t, IsSecretKey("SSH_PRIVATE_KEY"))
	assert.False(t, IsSecretKey("MY_KEY"))
	assert.False(t, IsSecretKey("my_api_key"), "matching is case-sensitive")
	assert.False(t, IsSecretKey("PATH"))
}

func TestApply_ChangeDetection(t *testing.T) {
	snap := model.Snapshot{}

	record, changed := Apply(snap, "FOO", "bar")
	assert.True(t, changed, "absent key always counts as changed")
	assert.Equal(t, model.ChangeRecord{Key: "FOO", DisplayValue: "bar"}, record)

	_, changed = Apply(snap, "FOO", "bar")
	assert.False(t, changed, "same value is a silent no-op")

	record, changed = Apply(snap, "FOO", "baz")
	assert.True(t, changed)
	assert.Equal(t, "baz", record.DisplayValue)

	value, ok := snap.Get("FOO")
	assert.True(t, ok)
	assert.Equal(t, "baz", value)
}

func TestApply_MasksSecrets(t *testing.T) {
	snap := model.Snapshot{}

	record, changed := Apply(snap, "GH_API_KEY", "supersecret")
	assert.True(t, changed)
	assert.True(t, record.Secret)
	assert.Equal(t, "supe...et", record.DisplayValue)

	// The snapshot itself holds the real value.
	value, _ := snap.Get("GH_API_KEY")
	assert.Equal(t, "supersecret", value)
}

func TestApply_EmptySecretValue(t *testing.T) {
	snap := model.Snapshot{}
	record, changed := Apply(snap, "EMPTY_API_KEY", "")
	assert.True(t, changed)
	assert.Equal(t, "", record.DisplayValue)
}
