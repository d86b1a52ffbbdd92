// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"fmt"
	"strings"
)

// Positional formats like RED 0/5, 111/111 or telephone-event 0-16
var fmtpPositionalRegex = mustCompile(`^\d+([,/-]\d+)+$`)

// FmtpParam is single format parameter. Positional parameters have no value.
type FmtpParam struct {
	Key      string
	Value    string
	HasValue bool
}

func (p FmtpParam) String() string {
	if !p.HasValue {
		return p.Key
	}
	return p.Key + "=" + p.Value
}

// FmtpParams are format parameters in insertion order.
// Zero value is ready to use.
type FmtpParams struct {
	params []FmtpParam
}

// ParseFmtpParams parses parameters part of fmtp line, ex. "minptime=10;useinbandfec=1".
// Prefix "a=fmtp:<pt> " is tolerated as some browsers send it.
func ParseFmtpParams(s string) (FmtpParams, error) {
	var p FmtpParams
	if strings.HasPrefix(s, "a=fmtp:") {
		_, after, found := strings.Cut(s, " ")
		if !found {
			return p, fmt.Errorf("%q: %w", s, ErrFmtpParamsInvalid)
		}
		s = after
	}

	if fmtpPositionalRegex.MatchString(s) {
		p.params = append(p.params, FmtpParam{Key: s})
		return p, nil
	}

	for _, kv := range strings.Split(s, ";") {
		key, val, found := strings.Cut(kv, "=")
		if !found || key == "" || val == "" || !validFmtpValue(val) {
			return FmtpParams{}, fmt.Errorf("param %q in %q: %w", kv, s, ErrFmtpParamsInvalid)
		}
		p.Set(key, val)
	}
	return p, nil
}

// Value may contain base64 padding (sprop-parameter-sets) but not another key=value.
func validFmtpValue(val string) bool {
	for i := 0; i < len(val); i++ {
		if val[i] != '=' {
			continue
		}
		if i+1 < len(val) && val[i+1] != '=' && val[i+1] != ',' {
			return false
		}
	}
	return true
}

func (p *FmtpParams) index(key string) int {
	for i, param := range p.params {
		if param.Key == key {
			return i
		}
	}
	return -1
}

// Get returns value of key. ok is false when key is missing or has no value.
func (p *FmtpParams) Get(key string) (string, bool) {
	i := p.index(key)
	if i < 0 || !p.params[i].HasValue {
		return "", false
	}
	return p.params[i].Value, true
}

func (p *FmtpParams) Has(key string) bool {
	return p.index(key) >= 0
}

// Set sets key to value. Existing key keeps its position.
func (p *FmtpParams) Set(key string, value string) {
	p.set(FmtpParam{Key: key, Value: value, HasValue: true})
}

// SetKey sets key without value.
func (p *FmtpParams) SetKey(key string) {
	p.set(FmtpParam{Key: key})
}

func (p *FmtpParams) set(param FmtpParam) {
	if i := p.index(param.Key); i >= 0 {
		p.params[i] = param
		return
	}
	p.params = append(p.params, param)
}

func (p *FmtpParams) Delete(key string) {
	if i := p.index(key); i >= 0 {
		p.params = append(p.params[:i:i], p.params[i+1:]...)
	}
}

// Merge sets all params of other. Later values overwrite existing ones.
func (p *FmtpParams) Merge(other FmtpParams) {
	for _, param := range other.params {
		p.set(param)
	}
}

func (p *FmtpParams) Len() int {
	return len(p.params)
}

// Params returns copy of params in order.
func (p *FmtpParams) Params() []FmtpParam {
	return append([]FmtpParam(nil), p.params...)
}

func (p *FmtpParams) Keys() []string {
	keys := make([]string, len(p.params))
	for i, param := range p.params {
		keys[i] = param.Key
	}
	return keys
}

func (p FmtpParams) String() string {
	var sb strings.Builder
	for i, param := range p.params {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(param.String())
	}
	return sb.String()
}
