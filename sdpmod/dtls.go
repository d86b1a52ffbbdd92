// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmod

import (
	"crypto"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"crypto/x509"
	"fmt"
	"strings"

	"github.com/emiago/sdpmunge"
	"github.com/emiago/sdpmunge/lines"
	"github.com/pion/dtls/v2/pkg/crypto/fingerprint"
	"github.com/rs/zerolog/log"
)

// FingerprintLine creates a=fingerprint line for certificate. Value is upper case as browsers send it.
func FingerprintLine(cert *x509.Certificate, algo crypto.Hash) (*lines.FingerprintLine, error) {
	name, err := fingerprint.StringFromHash(algo)
	if err != nil {
		return nil, err
	}
	value, err := fingerprint.Fingerprint(cert, algo)
	if err != nil {
		return nil, err
	}
	return &lines.FingerprintLine{Algorithm: name, Value: strings.ToUpper(value)}, nil
}

// SetFingerprint sets fingerprint of certificate on every media block.
// Session level fingerprint lines are removed as media level ones take precedence.
func SetFingerprint(s *sdpmunge.SDP, cert *x509.Certificate, algo crypto.Hash) error {
	fp, err := FingerprintLine(cert, algo)
	if err != nil {
		return err
	}

	other := s.Session.OtherLines[:0]
	for _, l := range s.Session.OtherLines {
		if _, ok := l.(*lines.FingerprintLine); ok {
			continue
		}
		other = append(other, l)
	}
	s.Session.OtherLines = other

	for _, m := range s.Media {
		m.Info().Fingerprint = fp
	}
	return nil
}

// Fingerprints returns fingerprints of media blocks and session, without duplicates.
func Fingerprints(s *sdpmunge.SDP) []*lines.FingerprintLine {
	var fps []*lines.FingerprintLine
	add := func(fp *lines.FingerprintLine) {
		for _, f := range fps {
			if strings.EqualFold(f.Algorithm, fp.Algorithm) && strings.EqualFold(f.Value, fp.Value) {
				return
			}
		}
		fps = append(fps, fp)
	}

	for _, m := range s.Media {
		if fp := m.Info().Fingerprint; fp != nil {
			add(fp)
		}
	}
	for _, l := range s.Session.OtherLines {
		if fp, ok := l.(*lines.FingerprintLine); ok {
			add(fp)
		}
	}
	return fps
}

// VerifyFingerprint checks that peer certificate from DTLS handshake matches one of fingerprints in SDP.
// Fingerprints with unsupported hash algorithm are skipped.
func VerifyFingerprint(s *sdpmunge.SDP, cert *x509.Certificate) error {
	fps := Fingerprints(s)
	if len(fps) == 0 {
		return ErrNoFingerprint
	}

	for _, fp := range fps {
		algo, err := fingerprint.HashFromString(fp.Algorithm)
		if err != nil {
			log.Debug().Str("alg", fp.Algorithm).Msg("Skipping fingerprint due to unsupported alg")
			continue
		}
		remote, err := fingerprint.Fingerprint(cert, algo)
		if err != nil {
			log.Debug().Err(err).Str("alg", fp.Algorithm).Msg("Skipping fingerprint")
			continue
		}

		log.Debug().Str("alg", fp.Algorithm).Str("fp", fp.Value).Str("rfp", remote).Msg("Comparing fingerprint")
		if strings.EqualFold(fp.Value, remote) {
			return nil
		}
	}
	return fmt.Errorf("%w: subject=%q", ErrFingerprintMismatch, cert.Subject.CommonName)
}
