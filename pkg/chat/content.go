// Package chat implements the streaming chat engine: content
// normalization, thinking/response recovery, media discovery, and the
// per-request event stream correlator.
package chat

import (
	"encoding/json"
	"strings"
)

// Block types produced by NormalizeContent.
const (
	BlockText     = "text"
	BlockThinking = "thinking"
	BlockImage    = "image"
)

// ContentBlock is the canonical content shape. Gateway messages carry
// content either as a plain string or as a list of loosely-typed
// blocks; NormalizeContent converts both into this tagged union so
// the extractors only ever see one shape.
type ContentBlock struct {
	Type     string
	Text     string
	URL      string
	MimeType string
	Alt      string
	// Base64Data is set for inline image sources.
	Base64Data string
}

// ImageRef is a displayable image resolved from content blocks.
type ImageRef struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
	Alt      string `json:"alt,omitempty"`
}

// rawBlock mirrors the loosely-typed block shape on the wire.
type rawBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Thinking string `json:"thinking"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Source   *struct {
		Type      string `json:"type"`
		MediaType string `json:"media_type"`
		Data      string `json:"data"`
	} `json:"source"`
}

// NormalizeContent converts raw message content (a JSON string, a JSON
// block list, or null) into canonical blocks. Null and undecodable
// content yield nil; unknown block types are dropped, not errors.
func NormalizeContent(raw json.RawMessage) []ContentBlock {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []ContentBlock{{Type: BlockText, Text: s}}
	}

	var rawBlocks []rawBlock
	if err := json.Unmarshal(raw, &rawBlocks); err != nil {
		return nil
	}

	blocks := make([]ContentBlock, 0, len(rawBlocks))
	for _, rb := range rawBlocks {
		switch rb.Type {
		case BlockText:
			blocks = append(blocks, ContentBlock{Type: BlockText, Text: rb.Text})
		case BlockThinking:
			// Some producers put the reasoning in "thinking", others in "text".
			t := rb.Thinking
			if t == "" {
				t = rb.Text
			}
			blocks = append(blocks, ContentBlock{Type: BlockThinking, Text: t})
		case BlockImage:
			b := ContentBlock{Type: BlockImage, URL: rb.URL, Alt: rb.Alt}
			if rb.Source != nil && rb.Source.Type == "base64" {
				b.Base64Data = rb.Source.Data
				b.MimeType = rb.Source.MediaType
			}
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Text concatenates all text blocks, newline-joined and trimmed.
func Text(blocks []ContentBlock) string {
	return joinBlocks(blocks, BlockText)
}

// Thinking concatenates all thinking blocks, newline-joined and trimmed.
func Thinking(blocks []ContentBlock) string {
	return joinBlocks(blocks, BlockThinking)
}

func joinBlocks(blocks []ContentBlock, blockType string) string {
	var parts []string
	for _, b := range blocks {
		if b.Type == blockType && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// Images resolves a displayable URL for every image block. Inline
// base64 sources are synthesized into data: URLs (media type defaults
// to image/png); blocks with neither an inline source nor an explicit
// URL are dropped.
func Images(blocks []ContentBlock) []ImageRef {
	var refs []ImageRef
	for _, b := range blocks {
		if b.Type != BlockImage {
			continue
		}
		switch {
		case b.Base64Data != "":
			mime := b.MimeType
			if mime == "" {
				mime = "image/png"
			}
			refs = append(refs, ImageRef{
				URL:      "data:" + mime + ";base64," + b.Base64Data,
				MimeType: mime,
				Alt:      b.Alt,
			})
		case b.URL != "":
			refs = append(refs, ImageRef{URL: b.URL, MimeType: b.MimeType, Alt: b.Alt})
		}
	}
	return refs
}
