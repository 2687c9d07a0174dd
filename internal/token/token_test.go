package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Token
	}{
		{"info token", "v_id42", Token{Action: ActionInfo, ID: "42"}},
		{"info token with real id", "v_id7068971038273423621", Token{Action: ActionInfo, ID: "7068971038273423621"}},
		{"audio token", "m_id6871245823033019141", Token{Action: ActionAudio, ID: "6871245823033019141"}},
		{"delete token with author", "delete99", Token{Action: ActionDelete, ID: "99"}},
		{"delete token without author", "delete", Token{Action: ActionDelete, ID: ""}},
		{"unknown prefix", "x_id42", Token{Action: ActionIgnore}},
		{"empty string", "", Token{Action: ActionIgnore}},
		{"prefix only fragment", "v_i", Token{Action: ActionIgnore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.raw))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("info", func(t *testing.T) {
		tok := Decode(EncodeInfo("7068971038273423621"))
		assert.Equal(t, ActionInfo, tok.Action)
		assert.Equal(t, "7068971038273423621", tok.ID)
	})

	t.Run("audio", func(t *testing.T) {
		tok := Decode(EncodeAudio("6871245823033019141"))
		assert.Equal(t, ActionAudio, tok.Action)
		assert.Equal(t, "6871245823033019141", tok.ID)
	})

	t.Run("delete", func(t *testing.T) {
		tok := Decode(EncodeDelete("261231309887438848"))
		assert.Equal(t, ActionDelete, tok.Action)
		assert.Equal(t, "261231309887438848", tok.ID)
	})
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "info", ActionInfo.String())
	assert.Equal(t, "audio", ActionAudio.String())
	assert.Equal(t, "delete", ActionDelete.String())
	assert.Equal(t, "ignore", ActionIgnore.String())
}
