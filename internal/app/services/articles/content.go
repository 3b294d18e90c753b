package articles

import (
	"strings"

	"openwindows-service/internal/app/models"
	"openwindows-service/internal/pkg/constvars"
)

// ParseContentBlocks turns an article's plain-text body into render blocks.
// Blocks are separated by blank lines. A block is a heading when it is a
// single line wrapped in ** markers, or a single short line with no closing
// punctuation. A block whose every line starts with a bullet marker is a
// list. Everything else is a paragraph.
func ParseContentBlocks(content string) []models.ArticleBlock {
	blocks := make([]models.ArticleBlock, 0)

	for _, chunk := range strings.Split(content, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		lines := splitTrimmedLines(chunk)

		if len(lines) == 1 {
			line := lines[0]
			if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4 {
				blocks = append(blocks, models.ArticleBlock{
					Kind: models.ArticleBlockHeading,
					Text: strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")),
				})
				continue
			}
			if isBareHeading(line) {
				blocks = append(blocks, models.ArticleBlock{
					Kind: models.ArticleBlockHeading,
					Text: line,
				})
				continue
			}
		}

		if items, ok := asListItems(lines); ok {
			blocks = append(blocks, models.ArticleBlock{
				Kind:  models.ArticleBlockList,
				Items: items,
			})
			continue
		}

		blocks = append(blocks, models.ArticleBlock{
			Kind: models.ArticleBlockParagraph,
			Text: strings.Join(lines, " "),
		})
	}

	return blocks
}

func splitTrimmedLines(chunk string) []string {
	rawLines := strings.Split(chunk, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isBareHeading(line string) bool {
	if len(line) > constvars.ArticleHeadingMaxLength {
		return false
	}
	last := line[len(line)-1]
	switch last {
	case '.', '!', '?', ':', ';', ',':
		return false
	}
	return true
}

func asListItems(lines []string) ([]string, bool) {
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "- "):
			items = append(items, strings.TrimSpace(strings.TrimPrefix(line, "- ")))
		case strings.HasPrefix(line, "• "):
			items = append(items, strings.TrimSpace(strings.TrimPrefix(line, "• ")))
		default:
			return nil, false
		}
	}
	return items, len(items) > 0
}
