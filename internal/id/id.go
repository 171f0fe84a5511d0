// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package id generates the short opaque identifiers used for users, tenants,
// ledgers and invites. Membership rows use UUIDs instead, see storage.
package id

import (
	"crypto/rand"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// EntityIDLength is the length of every entity id on the wire.
	EntityIDLength = 12
)

type GeneratorInterface interface {
	NewID() string
}

var _ GeneratorInterface = (*Generator)(nil)

type Generator struct{}

// NewID returns a 12 character random base62 string.
func (g *Generator) NewID() string {
	buf := make([]byte, EntityIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

func NewGenerator() *Generator {
	return new(Generator)
}
