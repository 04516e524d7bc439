// Package ui assembles inline-query result payloads.
package ui

import tele "gopkg.in/telebot.v4"

// NewSimpleArticleResult creates an ArticleResult with the given ID, title
// and plain-text content.
func NewSimpleArticleResult(id, title, text string) *tele.ArticleResult {
	result := &tele.ArticleResult{
		Title: title,
		Text:  text,
	}
	result.SetResultID(id)
	return result
}

// NewMarkdownArticleResult creates an ArticleResult whose message content is
// sent with Markdown formatting. The description shows up in the result
// picker only and is never part of the sent message.
func NewMarkdownArticleResult(id, title, description, text string) *tele.ArticleResult {
	result := &tele.ArticleResult{
		Title:       title,
		Description: description,
		Text:        text,
	}
	result.Content = &tele.InputTextMessageContent{
		Text:      text,
		ParseMode: tele.ModeMarkdown,
	}
	result.SetResultID(id)
	return result
}
