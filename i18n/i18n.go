// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package i18n

import (
	"fmt"
	"net/http"

	"golang.org/x/text/language"
)

// MessageCatalog declares the interface to get globalized messages.
type MessageCatalog interface {
	GetMessage(ID string, tag language.Tag, v ...any) string
	GetLangFromRequest(r *http.Request) language.Tag
}

// GetMessageOrDefault is a helper func to get the translated message based on
// the message ID and lang. If no matching message is found, it returns the
// 'def' message.
func GetMessageOrDefault(c MessageCatalog, id string, tag language.Tag, def string, v ...any) string {
	if c != nil {
		if s := c.GetMessage(id, tag, v...); s != id {
			return s
		}
	}

	return def
}

// GetLangFromRequest is a helper func to get the language tag based on the
// HTTP request and the constructed message catalog.
func GetLangFromRequest(c MessageCatalog, r *http.Request) language.Tag {
	if c != nil {
		return c.GetLangFromRequest(r)
	}

	return language.English
}

// NewDefaultMessageCatalog builds a map backed MessageCatalog from a set of
// per-language message tables keyed by message ID.
func NewDefaultMessageCatalog(messages map[language.Tag]map[string]string) *DefaultMessageCatalog {
	tags := make([]language.Tag, 0, len(messages)+1)
	tags = append(tags, language.English)

	for tag := range messages {
		if tag != language.English {
			tags = append(tags, tag)
		}
	}

	return &DefaultMessageCatalog{
		messages: messages,
		matcher:  language.NewMatcher(tags),
	}
}

// DefaultMessageCatalog is an in-memory MessageCatalog.
type DefaultMessageCatalog struct {
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
}

func (c *DefaultMessageCatalog) GetMessage(id string, tag language.Tag, v ...any) string {
	if table, ok := c.messages[tag]; ok {
		if msg, ok := table[id]; ok {
			if len(v) > 0 {
				return fmt.Sprintf(msg, v...)
			}

			return msg
		}
	}

	return id
}

func (c *DefaultMessageCatalog) GetLangFromRequest(r *http.Request) language.Tag {
	if r == nil {
		return language.English
	}

	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.English
	}

	tag, _, _ := c.matcher.Match(tags...)

	return tag
}

var _ MessageCatalog = (*DefaultMessageCatalog)(nil)
