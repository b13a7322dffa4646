package notion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"goc-wiki-section/export"
	"goc-wiki-section/logger"
)

const (
	chunkSize        = 2000 // Notion rich text 하나의 최대 길이
	maxBlocksPerCall = 100  // 요청 하나에 넣을 수 있는 최대 블록 수
)

var _ export.Exporter = (*Exporter)(nil)

// ErrNotConfigured Notion 키나 상위 페이지가 설정되지 않았습니다
var ErrNotConfigured = errors.New("Notion 내보내기가 설정되지 않았습니다 (notion_api_key, notion_parent_page_id)")

// Exporter 결과를 지정한 상위 페이지 아래 새 Notion 페이지로 내보내는 구조체
type Exporter struct {
	client       *notionapi.Client
	parentPageID string
}

// NewExporter 새로운 Notion 내보내기를 생성합니다
func NewExporter(apiKey, parentPageID string, opts ...notionapi.ClientOption) *Exporter {
	return &Exporter{
		client:       notionapi.NewClient(notionapi.Token(apiKey), opts...),
		parentPageID: parentPageID,
	}
}

// Export 페이지를 만들고 URL 을 반환합니다
func (e *Exporter) Export(ctx context.Context, doc export.Document) (string, error) {
	blocks := paragraphBlocks(doc.Content)
	first := blocks[:min(len(blocks), maxBlocksPerCall)]

	page, err := e.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: notionapi.PageID(e.parentPageID),
		},
		Properties: notionapi.Properties{
			"title": notionapi.TitleProperty{
				Title: []notionapi.RichText{richText(doc.Title())},
			},
		},
		Children: first,
	})
	if err != nil {
		return "", fmt.Errorf("Notion 페이지 생성 실패: %w", err)
	}

	// 블록이 100개를 넘으면 나머지는 이어 붙입니다
	for i := len(first); i < len(blocks); i += maxBlocksPerCall {
		end := min(i+maxBlocksPerCall, len(blocks))
		_, err := e.client.Block.AppendChildren(ctx, notionapi.BlockID(page.ID), &notionapi.AppendBlockChildrenRequest{
			Children: blocks[i:end],
		})
		if err != nil {
			return "", fmt.Errorf("Notion 블록 추가 실패: %w", err)
		}
	}

	logger.Info("Notion 페이지 생성: %s (블록 %d개)", page.URL, len(blocks))
	return page.URL, nil
}

// paragraphBlocks 빈 줄로 문단을 나누고, 긴 문단은 2000자 단위로 청킹합니다
func paragraphBlocks(content string) []notionapi.Block {
	var blocks []notionapi.Block
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		for _, chunk := range chunkText(para, chunkSize) {
			blocks = append(blocks, &notionapi.ParagraphBlock{
				BasicBlock: notionapi.BasicBlock{
					Object: notionapi.ObjectTypeBlock,
					Type:   notionapi.BlockTypeParagraph,
				},
				Paragraph: notionapi.Paragraph{
					RichText: []notionapi.RichText{richText(chunk)},
				},
			})
		}
	}
	return blocks
}

func richText(content string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}
}

// chunkText 텍스트를 지정된 크기로 청킹합니다
func chunkText(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	for i := 0; i < len(runes); i += size {
		end := min(i+size, len(runes))
		chunks = append(chunks, string(runes[i:end]))
	}

	return chunks
}
