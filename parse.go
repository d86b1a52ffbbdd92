// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"fmt"

	"github.com/emiago/sdpmunge/lines"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ParseDebug logs every line that was not recognized by grammar
	ParseDebug = false
)

// ParseStats are counters of single Parse call
type ParseStats struct {
	Lines        int
	UnknownLines int
	// Media are types of media blocks in order
	Media []lines.MediaType
}

// ParseObserver is notified after every Parse. err is set when parsing failed.
type ParseObserver interface {
	ObserveParse(stats ParseStats, err error)
}

type parseConfig struct {
	grammar  *Grammar
	log      zerolog.Logger
	observer ParseObserver
}

type ParseOption func(c *parseConfig)

// WithGrammar parses with custom grammar instead of default one
func WithGrammar(g *Grammar) ParseOption {
	return func(c *parseConfig) {
		c.grammar = g
	}
}

func WithLogger(l zerolog.Logger) ParseOption {
	return func(c *parseConfig) {
		c.log = l
	}
}

func WithObserver(o ParseObserver) ParseOption {
	return func(c *parseConfig) {
		c.observer = o
	}
}

// Parse parses SDP text into SDP model.
// Lines not understood are kept as they are and written back on serialization.
// Error is returned only on structural problems like line for undeclared payload type.
func Parse(text string, opts ...ParseOption) (*SDP, error) {
	c := parseConfig{
		grammar: defaultGrammar,
		log:     log.Logger,
	}
	for _, o := range opts {
		o(&c)
	}

	ls := c.grammar.Tokenize(text)
	stats := ParseStats{Lines: len(ls)}
	for _, l := range ls {
		u, ok := l.(*lines.UnknownLine)
		if !ok {
			continue
		}
		stats.UnknownLines++
		if ParseDebug {
			c.log.Debug().Str("line", u.Value).Msg("Line not recognized")
		}
	}

	sdp, err := assemble(ls, c.log)
	if err == nil {
		for _, m := range sdp.Media {
			stats.Media = append(stats.Media, m.Info().Type)
		}
	}

	if c.observer != nil {
		c.observer.ObserveParse(stats, err)
	}
	return sdp, err
}

// Assemble builds SDP model from parsed lines.
// Lines before first m-line belong to session, others to the media block opened by last m-line.
func Assemble(ls []lines.Line) (*SDP, error) {
	return assemble(ls, log.Logger)
}

func assemble(ls []lines.Line, logger zerolog.Logger) (*SDP, error) {
	sdp := &SDP{}
	var current block = &sdp.Session
	for _, l := range ls {
		ml, ok := l.(*lines.MediaLine)
		if !ok {
			if err := current.AddLine(l); err != nil {
				return nil, err
			}
			continue
		}

		m, err := NewMediaDescription(ml)
		if err != nil {
			return nil, err
		}
		if logger.GetLevel() <= zerolog.DebugLevel {
			logger.Debug().Str("type", string(ml.Type)).Int("index", len(sdp.Media)).Msg("Media block created")
		}
		m.Info().SetLogger(logger)
		sdp.Media = append(sdp.Media, m)
		current = m
	}
	return sdp, nil
}

type block interface {
	AddLine(l lines.Line) error
	Lines() []lines.Line
}

// NewMediaDescription creates media block for m-line.
// Audio and video create AVMediaDescription, application creates ApplicationMediaDescription.
func NewMediaDescription(ml *lines.MediaLine) (MediaDescription, error) {
	switch ml.Type {
	case lines.MediaTypeAudio, lines.MediaTypeVideo:
		av, err := NewAVMediaDescription(ml)
		if err != nil {
			return nil, err
		}
		return av, nil
	case lines.MediaTypeApplication:
		return NewApplicationMediaDescription(ml), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, ml.Type)
}
