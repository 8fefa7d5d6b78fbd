// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/Xuanwo/go-locale"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"
)

//go:embed locale/*
var locales embed.FS

// Supported lists the languages the dashboard is translated to. The first entry is the
// source language.
var Supported = []language.Tag{language.English, language.French}

// Translator hands out localizers for the supported languages.
type Translator struct {
	bundle   *spreak.Bundle
	matcher  language.Matcher
	fallback language.Tag
}

// New loads the embedded translations. loc is the language used when a visitor does not
// ask for a supported one; if empty it is detected from the environment.
func New(loc string) (*Translator, error) {
	tag := language.Make(loc)
	var err error
	if loc == "" {
		tag, err = locale.Detect()
		if err != nil {
			tag = language.English // Unable to detect locale, fallback to English
		}
	}

	localeFS, err := fs.Sub(locales, "locale")
	if err != nil {
		return nil, fmt.Errorf("failed to load locales: %w", err)
	}

	langs := make([]interface{}, 0, len(Supported))
	for _, lang := range Supported {
		langs = append(langs, lang)
	}
	bundle, err := spreak.NewBundle(
		spreak.WithSourceLanguage(language.English),
		spreak.WithFallbackLanguage(language.English),
		spreak.WithDomainFs("", localeFS),
		spreak.WithLanguage(langs...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create i18n bundle: %w", err)
	}

	translator := &Translator{
		bundle:  bundle,
		matcher: language.NewMatcher(Supported),
	}
	translator.fallback = translator.match(tag)
	return translator, nil
}

// Default returns the localizer for the configured language.
func (t *Translator) Default() *spreak.Localizer {
	return spreak.NewLocalizer(t.bundle, t.fallback)
}

// Localizer returns the localizer best matching an Accept-Language header value. It falls
// back to the configured language if nothing in the header is supported.
func (t *Translator) Localizer(acceptLanguage string) *spreak.Localizer {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.Default()
	}
	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.Default()
	}
	return spreak.NewLocalizer(t.bundle, Supported[idx])
}

func (t *Translator) match(tag language.Tag) language.Tag {
	_, idx, confidence := t.matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return Supported[idx]
}
