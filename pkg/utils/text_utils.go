package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度按单词换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行，至少一行）
//
// 换行规则:
//   - 在空白处断行，连续空白视为一个空格
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if MeasureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
		}

		// 单词本身超宽：按字符拆分，最后一段留在当前行
		parts := splitRunes(word, font, maxWidth)
		lines = append(lines, parts[:len(parts)-1]...)
		currentLine = parts[len(parts)-1]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// splitRunes 按字符把单词拆成不超过 maxWidth 的片段（单个字符超宽时独占一段）
func splitRunes(word string, font *text.GoTextFace, maxWidth float64) []string {
	var parts []string
	current := ""

	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]

		testPart := current + string(r)
		if current != "" && MeasureTextWidth(testPart, font) > maxWidth {
			parts = append(parts, current)
			current = string(r)
			continue
		}
		current = testPart
	}

	return append(parts, current)
}

// MeasureTextWidth 测量单行文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
