// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package main

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emiago/sdpmunge"
	"github.com/emiago/sdpmunge/sdpmod"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Reads SDP from file or stdin, applies munging and writes result to stdout.
//
//	sdpmunge -retain-codecs opus,VP8,rtx -retain-candidates udp -disable-remb offer.sdp
func main() {
	fRemoveCodecs := flag.String("remove-codecs", "", "Comma separated codec names to remove")
	fRetainCodecs := flag.String("retain-codecs", "", "Comma separated codec names to keep, others are removed")
	fRetainCandidates := flag.String("retain-candidates", "", "Comma separated candidate transports to keep, ex. udp")
	fDisableRemb := flag.Bool("disable-remb", false, "Remove goog-remb feedback")
	fDisableTwcc := flag.Bool("disable-twcc", false, "Remove transport-cc feedback")
	fCert := flag.String("cert", "", "PEM certificate used for a=fingerprint on every media")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file.sdp]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	lev, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || lev == zerolog.NoLevel {
		lev = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.StampMicro,
	}).With().Timestamp().Logger().Level(lev)
	sdpmunge.ParseDebug = os.Getenv("SDP_PARSE_DEBUG") == "true"

	err = func() error {
		text, err := readInput(flag.Arg(0))
		if err != nil {
			return err
		}

		s, err := sdpmunge.Parse(text, sdpmunge.WithObserver(statsLogger{}))
		if err != nil {
			return err
		}

		av := s.AVMedia()
		for _, name := range splitList(*fRemoveCodecs) {
			if !sdpmunge.RemoveCodec(name, av...) {
				log.Warn().Str("codec", name).Msg("Codec not found")
			}
		}
		if allowed := splitList(*fRetainCodecs); len(allowed) > 0 {
			sdpmunge.RetainCodecs(allowed, av...)
		}
		if allowed := splitList(*fRetainCandidates); len(allowed) > 0 {
			sdpmunge.RetainCandidates(allowed, s.Media...)
		}
		if *fDisableRemb {
			sdpmunge.DisableRemb(av...)
		}
		if *fDisableTwcc {
			sdpmunge.DisableTwcc(av...)
		}
		if *fCert != "" {
			cert, err := readCertificate(*fCert)
			if err != nil {
				return err
			}
			if err := sdpmod.SetFingerprint(s, cert, crypto.SHA256); err != nil {
				return err
			}
		}

		_, err = os.Stdout.Write(s.Bytes())
		return err
	}()

	if err != nil {
		log.Fatal().Err(err).Msg("Munging failed")
	}
}

type statsLogger struct{}

func (statsLogger) ObserveParse(stats sdpmunge.ParseStats, err error) {
	if err != nil {
		return
	}
	media := make([]string, len(stats.Media))
	for i, t := range stats.Media {
		media[i] = string(t)
	}
	log.Info().Int("lines", stats.Lines).Int("unknown", stats.UnknownLines).Strs("media", media).Msg("SDP parsed")
}

func readInput(filename string) (string, error) {
	if filename == "" || filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(filename)
	return string(data), err
}

func readCertificate(filename string) (*x509.Certificate, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, errors.New("no PEM certificate found")
	}
	return x509.ParseCertificate(block.Bytes)
}

func splitList(s string) []string {
	var list []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
