// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package testdata

import (
	"crypto/tls"
	"crypto/x509"
	_ "embed"
)

// Self signed certificates used for fingerprint tests
// openssl is required
//go:generate bash -c "./generate_certs.sh"

var (
	//go:embed certs/server.crt
	serverCRT []byte

	//go:embed certs/server.key
	serverKEY []byte

	//go:embed certs/client.crt
	clientCRT []byte

	//go:embed certs/client.key
	clientKEY []byte
)

const (
	// SHA-256 fingerprints as in a=fingerprint line
	ServerFingerprintSHA256 = "E7:34:F3:ED:65:94:B6:E4:8F:3C:1C:E5:C9:08:98:97:DB:E2:C1:E9:0E:B4:7C:FA:84:C0:7E:8C:E8:C2:7D:5C"
	ClientFingerprintSHA256 = "EB:7D:3A:A6:9C:E4:05:BA:F7:0E:6D:1C:6A:B1:82:1E:B4:9B:62:40:A7:05:09:3F:09:1B:DE:B9:02:EE:59:41"
)

func ServerCertificate() tls.Certificate {
	cert, err := tls.X509KeyPair(serverCRT, serverKEY)
	if err != nil {
		panic(err)
	}
	return cert
}

// ServerCertificatePEM returns server certificate as PEM
func ServerCertificatePEM() []byte {
	return serverCRT
}

// ServerX509Certificate returns parsed leaf of ServerCertificate
func ServerX509Certificate() *x509.Certificate {
	return leaf(ServerCertificate())
}

func ClientCertificate() tls.Certificate {
	cert, err := tls.X509KeyPair(clientCRT, clientKEY)
	if err != nil {
		panic(err)
	}
	return cert
}

func ClientX509Certificate() *x509.Certificate {
	return leaf(ClientCertificate())
}

func leaf(cert tls.Certificate) *x509.Certificate {
	x, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		panic(err)
	}
	return x
}
