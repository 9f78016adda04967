package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContent(t *testing.T) {
	t.Run("plain string becomes a single text block", func(t *testing.T) {
		blocks := NormalizeContent(json.RawMessage(`"hello there"`))
		assert.Equal(t, []ContentBlock{{Type: BlockText, Text: "hello there"}}, blocks)
	})

	t.Run("null and invalid content yield nil", func(t *testing.T) {
		assert.Nil(t, NormalizeContent(nil))
		assert.Nil(t, NormalizeContent(json.RawMessage(`null`)))
		assert.Nil(t, NormalizeContent(json.RawMessage(`{not json`)))
		assert.Nil(t, NormalizeContent(json.RawMessage(`{"type":"text"}`)))
	})

	t.Run("block list preserves order and drops unknown types", func(t *testing.T) {
		raw := json.RawMessage(`[
			{"type":"text","text":"answer"},
			{"type":"thinking","thinking":"reasoning"},
			{"type":"bogus","text":"ignored"},
			{"type":"image","url":"https://example.com/a.png"}
		]`)
		blocks := NormalizeContent(raw)
		assert.Len(t, blocks, 3)
		assert.Equal(t, BlockText, blocks[0].Type)
		assert.Equal(t, BlockThinking, blocks[1].Type)
		assert.Equal(t, "reasoning", blocks[1].Text)
		assert.Equal(t, BlockImage, blocks[2].Type)
	})

	t.Run("thinking block falls back to text field", func(t *testing.T) {
		blocks := NormalizeContent(json.RawMessage(`[{"type":"thinking","text":"from text field"}]`))
		assert.Equal(t, "from text field", blocks[0].Text)
	})

	t.Run("base64 image source is captured", func(t *testing.T) {
		raw := json.RawMessage(`[{"type":"image","source":{"type":"base64","media_type":"image/jpeg","data":"Zm9v"}}]`)
		blocks := NormalizeContent(raw)
		assert.Equal(t, "Zm9v", blocks[0].Base64Data)
		assert.Equal(t, "image/jpeg", blocks[0].MimeType)
	})
}

func TestTextAndThinking(t *testing.T) {
	blocks := []ContentBlock{
		{Type: BlockText, Text: "first"},
		{Type: BlockThinking, Text: "hmm"},
		{Type: BlockText, Text: "second"},
		{Type: BlockText, Text: ""},
	}
	assert.Equal(t, "first\nsecond", Text(blocks))
	assert.Equal(t, "hmm", Thinking(blocks))
	assert.Equal(t, "", Text(nil))
}

func TestImages(t *testing.T) {
	blocks := []ContentBlock{
		{Type: BlockText, Text: "not an image"},
		{Type: BlockImage, Base64Data: "Zm9v", MimeType: "image/jpeg", Alt: "photo"},
		{Type: BlockImage, Base64Data: "YmFy"}, // no media type
		{Type: BlockImage, URL: "https://example.com/x.gif", MimeType: "image/gif"},
		{Type: BlockImage}, // neither source nor url: dropped
	}

	refs := Images(blocks)
	assert.Len(t, refs, 3)
	assert.Equal(t, "data:image/jpeg;base64,Zm9v", refs[0].URL)
	assert.Equal(t, "photo", refs[0].Alt)
	assert.Equal(t, "data:image/png;base64,YmFy", refs[1].URL, "media type defaults to png")
	assert.Equal(t, "https://example.com/x.gif", refs[2].URL)
}
